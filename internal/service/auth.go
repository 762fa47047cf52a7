package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/geoservice-auth/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// AuthService orchestrates the user account lifecycle: registration
// with email confirmation, credential login, and session verification.
//
// Per user the lifecycle is unregistered -> pending confirmation ->
// active; only active users can log in.
type AuthService struct {
	users      domain.UserRepository
	mailer     domain.Mailer
	jwtSecret  []byte
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, mailer domain.Mailer, jwtSecret string, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		mailer:     mailer,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcryptCost,
	}
}

// Register starts (or restarts) the confirmation flow for an email.
//
// An email that already belongs to a verified account is rejected with
// domain.ErrEmailInUse. An unverified record is overwritten in place
// with a fresh password hash and confirmation token, so a user whose
// confirmation email went missing can simply register again; only the
// newest token remains valid. On success a confirmation email has been
// dispatched; no session is issued at registration.
func (s *AuthService) Register(ctx context.Context, email, name, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get user by email: %w", err)
	}
	if existing != nil && existing.Verified() {
		return domain.ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	token, err := NewConfirmationToken()
	if err != nil {
		return fmt.Errorf("generate confirmation token: %w", err)
	}

	user := &domain.User{
		Email:             email,
		Name:              name,
		PasswordHash:      string(hash),
		ConfirmationToken: &token,
	}

	// The store's unique constraint on email is the only serialization
	// point for concurrent registrations; a record that turned verified
	// between the lookup above and this write surfaces as ErrEmailInUse.
	if err := s.users.UpsertByEmail(ctx, user); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	// A mailer failure aborts the acknowledgment even though the record
	// may already be upserted; re-registering restarts the flow.
	if err := s.mailer.SendConfirmation(ctx, email, token); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}

	return nil
}

// ConfirmEmail consumes a confirmation token, transitioning the owning
// user to verified. The token is single-use: it is cleared on success,
// so a second call finds no matching user and reports
// domain.ErrNotFound.
func (s *AuthService) ConfirmEmail(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: confirmation token is required", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByConfirmationToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get user by confirmation token: %w", err)
	}

	if err := s.users.MarkEmailVerified(ctx, user.ID, time.Now().UTC()); err != nil {
		return fmt.Errorf("mark email verified: %w", err)
	}
	return nil
}

// Login verifies credentials and returns the user together with a
// signed session token.
//
// The verification gate is checked only after the password matched, so
// a caller holding a wrong password cannot probe whether an account is
// verified.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrNotFound
		}
		return nil, "", fmt.Errorf("get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if !user.Verified() {
		return nil, "", domain.ErrEmailNotVerified
	}

	token, err := s.issueSessionToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}

	return user, token, nil
}

// GetProfile retrieves a user by id for profile projections.
func (s *AuthService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}
