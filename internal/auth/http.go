package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

// CookieName holds the session token set on admin login.
const CookieName = "token"

type claimsContextKey struct{}

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// ClaimsFromContext extracts claims stored by RequireAdmin or the gRPC
// interceptors.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsContextKey{}).(*Claims)
	return c, ok && c != nil
}

// TokenFromRequest returns the bearer token from the Authorization header,
// falling back to the session cookie.
func TokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := r.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// SessionCookie builds the HttpOnly cookie carrying token.
func SessionCookie(token string, expiresAt time.Time, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearedCookie expires the session cookie.
func ClearedCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// RequireAdmin rejects requests without a valid admin token with 401 and
// stores the verified claims in the request context.
func RequireAdmin(m *JWTManager, logger lager.Logger) func(http.Handler) http.Handler {
	logger = logger.Session("require-admin")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				unauthorized(w, "missing token")
				return
			}
			claims, err := m.VerifyToken(token)
			if err != nil {
				logger.Info("rejected-token", lager.Data{"path": r.URL.Path, "error": err.Error()})
				unauthorized(w, "invalid token")
				return
			}
			if !claims.IsAdmin() {
				logger.Info("rejected-role", lager.Data{"path": r.URL.Path, "role": claims.Role})
				unauthorized(w, "admin role required")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
