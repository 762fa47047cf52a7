package service_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msomdec/geoservice-auth/internal/domain"
	"github.com/msomdec/geoservice-auth/internal/service"
)

// tokenOnlyService builds an AuthService that is only used for token
// validation; it never touches the store or the mailer.
func tokenOnlyService() *service.AuthService {
	return service.NewAuthService(nil, nil, testJWTSecret, 4)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestValidateSessionToken_Expired(t *testing.T) {
	auth := tokenOnlyService()
	now := time.Now()

	// Structurally valid signature, expiry in the past.
	token := signToken(t, testJWTSecret, jwt.MapClaims{
		"id":  "user-1",
		"iat": now.Add(-48 * time.Hour).Unix(),
		"exp": now.Add(-24 * time.Hour).Unix(),
	})

	if _, err := auth.ValidateSessionToken(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestValidateSessionToken_WrongSecret(t *testing.T) {
	auth := tokenOnlyService()

	token := signToken(t, "another-secret-entirely-32-bytes!", jwt.MapClaims{
		"id":  "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, err := auth.ValidateSessionToken(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestValidateSessionToken_Garbage(t *testing.T) {
	auth := tokenOnlyService()

	for _, garbage := range []string{"", "garbage", "a.b.c", strings.Repeat("x", 512)} {
		if _, err := auth.ValidateSessionToken(garbage); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", garbage, err)
		}
	}
}

func TestValidateSessionToken_NoneAlgorithm(t *testing.T) {
	auth := tokenOnlyService()

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := auth.ValidateSessionToken(unsigned); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}

func TestValidateSessionToken_MissingIDClaim(t *testing.T) {
	auth := tokenOnlyService()

	// Well-signed and unexpired, but the payload fails the shape check.
	token := signToken(t, testJWTSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, err := auth.ValidateSessionToken(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for missing id claim, got %v", err)
	}
}

func TestNewConfirmationToken(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		token, err := service.NewConfirmationToken()
		if err != nil {
			t.Fatalf("NewConfirmationToken: %v", err)
		}
		if len(token) != 64 {
			t.Fatalf("expected 64 hex chars, got %d", len(token))
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}
