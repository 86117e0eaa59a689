package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenManager wraps opaque session ids in a signed cookie envelope.
// The envelope only proves the id was issued by this service; whether the
// session is still valid is decided by the session store.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), now: time.Now}
}

// Seal signs sessionID with the session's expiry.
func (tm *TokenManager) Seal(sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(tm.now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

// Open validates the envelope and returns the session id inside it.
func (tm *TokenManager) Open(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(tm.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.ID == "" {
		return "", errors.New("invalid session envelope")
	}
	return claims.ID, nil
}
