// Package auth issues and verifies admin session tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/PaulBabatuyi/portfolio/internal/normalize"
)

// RoleAdmin is the only role allowed on the admin surface.
const RoleAdmin = "admin"

var ErrInvalidToken = errors.New("invalid token")

// JWTManager signs and validates JWT tokens used by the API.
type JWTManager struct {
	keys      map[string]string // kid -> HMAC secret
	activeKid string            // empty when running with a single secret
	duration  time.Duration
	now       func() time.Time
}

// Claims is the JWT payload carried by admin sessions.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the claims grant admin access.
func (c *Claims) IsAdmin() bool { return c != nil && c.Role == RoleAdmin }

// NewJWTManager returns a manager signing with a single secret.
func NewJWTManager(secretKey string, duration time.Duration) *JWTManager {
	return &JWTManager{
		keys:     map[string]string{"": secretKey},
		duration: duration,
		now:      time.Now,
	}
}

// NewJWTManagerFromKeys returns a manager that signs with activeKid and
// accepts tokens signed by any of keys, so secrets can be rotated without
// logging everyone out.
func NewJWTManagerFromKeys(keys map[string]string, activeKid string, duration time.Duration) *JWTManager {
	copied := make(map[string]string, len(keys))
	for kid, secret := range keys {
		copied[kid] = secret
	}
	return &JWTManager{
		keys:      copied,
		activeKid: activeKid,
		duration:  duration,
		now:       time.Now,
	}
}

// GenerateToken issues a signed token for a user.
func (m *JWTManager) GenerateToken(userID bson.ObjectID, email, role string) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(m.duration)

	claims := &Claims{
		UserID: userID.Hex(),
		Email:  normalize.Email(email),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	if m.activeKid != "" {
		token.Header["kid"] = m.activeKid
	}

	secret, ok := m.keys[m.activeKid]
	if !ok {
		return "", time.Time{}, fmt.Errorf("no signing key for kid %q", m.activeKid)
	}
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VerifyToken parses and validates a token and returns its claims.
func (m *JWTManager) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, m.keyFunc, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (m *JWTManager) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	kid, _ := token.Header["kid"].(string)
	secret, ok := m.keys[kid]
	if !ok {
		return nil, fmt.Errorf("unknown key id %q", kid)
	}
	return []byte(secret), nil
}

// HashPassword returns a bcrypt hash for the provided plaintext.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
