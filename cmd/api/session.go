package main

import (
	"errors"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager/v3"

	"github.com/PaulBabatuyi/portfolio/internal/auth"
	"github.com/PaulBabatuyi/portfolio/internal/data"
	"github.com/PaulBabatuyi/portfolio/internal/normalize"
)

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginOutput struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	User      *data.User `json:"user"`
}

var errInvalidCredentials = errors.New("invalid credentials")

// authenticate checks an admin's email and password. Unknown accounts, wrong
// passwords and non-admin roles all yield errInvalidCredentials.
func authenticate(r *http.Request, users userStore, email, password string) (*data.User, error) {
	user, err := users.GetUserByEmail(r.Context(), normalize.Email(email))
	if errors.Is(err, data.ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := auth.CheckPassword(user.Password, password); err != nil {
		return nil, errInvalidCredentials
	}
	if user.Role != auth.RoleAdmin {
		return nil, errInvalidCredentials
	}
	return user, nil
}

func (app *application) login(w http.ResponseWriter, r *http.Request) {
	logger := app.logger.Session("login")

	var in loginInput
	if err := decodeJSON(w, r, &in); err != nil || in.Email == "" || in.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := authenticate(r, app.users, in.Email, in.Password)
	if errors.Is(err, errInvalidCredentials) {
		logger.Info("rejected", lager.Data{"email": normalize.Email(in.Email)})
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	token, expiresAt, err := app.jwt.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	http.SetCookie(w, auth.SessionCookie(token, expiresAt, app.cookieSecure))
	logger.Info("succeeded", lager.Data{"user-id": user.ID.Hex()})
	writeJSON(w, http.StatusOK, loginOutput{Token: token, ExpiresAt: expiresAt, User: user})
}

func (app *application) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ClearedCookie(app.cookieSecure))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (app *application) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing auth claims")
		return
	}
	id, err := data.ParseID(claims.UserID)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	user, err := app.users.GetUserByID(r.Context(), id)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
