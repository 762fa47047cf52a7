package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msomdec/geoservice-auth/internal/domain"
)

// sessionTokenTTL is the fixed validity window of a session token.
const sessionTokenTTL = 24 * time.Hour

// confirmationTokenBytes is the entropy of a confirmation token before
// hex encoding.
const confirmationTokenBytes = 32

// UserPayload is the identity carried by a session token. A decoded
// token whose payload does not satisfy this shape is invalid.
type UserPayload struct {
	ID string
}

type sessionClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// issueSessionToken signs a stateless bearer token for the given user
// id, valid for 24 hours. Possession of a validly-signed, unexpired
// token is sufficient proof of identity.
func (s *AuthService) issueSessionToken(userID string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateSessionToken parses and validates a session token string.
// Bad signature, malformed structure and expiry all collapse into
// domain.ErrInvalidToken; callers must not learn which one it was.
func (s *AuthService) ValidateSessionToken(tokenString string) (UserPayload, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return UserPayload{}, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return UserPayload{}, domain.ErrInvalidToken
	}

	// A structurally valid token is not trusted until its payload
	// passes the shape check.
	if claims.UserID == "" {
		return UserPayload{}, domain.ErrInvalidToken
	}

	return UserPayload{ID: claims.UserID}, nil
}

// NewConfirmationToken returns a cryptographically random, hex-encoded
// one-time token with 256 bits of entropy. Uniqueness relies on the
// randomness; the store's unique index is defense in depth only.
func NewConfirmationToken() (string, error) {
	b := make([]byte, confirmationTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
