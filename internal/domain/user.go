package domain

import (
	"context"
	"time"
)

// User represents an account in the authentication backend.
//
// EmailVerifiedAt is nil until the user proves control of their inbox
// by following the confirmation link. ConfirmationToken is present only
// while a confirmation is pending and is cleared when it is consumed.
type User struct {
	ID                string
	Email             string
	Name              string
	PasswordHash      string
	EmailVerifiedAt   *time.Time
	ConfirmationToken *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Verified reports whether the user has completed email confirmation.
func (u *User) Verified() bool {
	return u.EmailVerifiedAt != nil
}

// UserRepository defines persistence operations for users.
//
// Implementations must enforce a uniqueness constraint on email and on
// non-null confirmation tokens; a violation surfaces as ErrEmailInUse.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByConfirmationToken(ctx context.Context, token string) (*User, error)

	// UpsertByEmail creates the user, or overwrites name, password hash
	// and confirmation token on an existing record that has not verified
	// its email yet. If the record exists and is already verified it
	// returns ErrEmailInUse without changing anything.
	UpsertByEmail(ctx context.Context, user *User) error

	// MarkEmailVerified stamps the verification time and clears the
	// confirmation token, making the token single-use.
	MarkEmailVerified(ctx context.Context, id string, verifiedAt time.Time) error
}

// Mailer delivers the confirmation link to a freshly registered user.
type Mailer interface {
	SendConfirmation(ctx context.Context, toEmail, token string) error
}
