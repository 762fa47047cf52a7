package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/geoservice-auth/internal/domain"
)

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

var _ domain.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new SQLite-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

const userColumns = `id, email, name, password_hash, email_verified_at, confirmation_token, created_at, updated_at`

// UpsertByEmail inserts the user, or overwrites the mutable fields of
// an existing record with the same email as long as that record has not
// verified its email. A verified record is never touched; the guarded
// conflict clause then matches no row and the call reports
// domain.ErrEmailInUse. This is the sole serialization point for
// concurrent registrations of the same email.
func (r *UserRepository) UpsertByEmail(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (id, email, name, password_hash, confirmation_token, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(email) DO UPDATE SET
		     name = excluded.name,
		     password_hash = excluded.password_hash,
		     confirmation_token = excluded.confirmation_token,
		     updated_at = excluded.updated_at
		 WHERE users.email_verified_at IS NULL
		 RETURNING id, created_at`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.ConfirmationToken, now, now,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEmailInUse
		}
		if isUniqueConstraintError(err) {
			return domain.ErrEmailInUse
		}
		return fmt.Errorf("upsert user: %w", err)
	}

	user.UpdatedAt = now
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (r *UserRepository) GetByConfirmationToken(ctx context.Context, token string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE confirmation_token = ?`, token)
}

// MarkEmailVerified stamps the verification time and clears the
// confirmation token so it cannot be consumed twice.
func (r *UserRepository) MarkEmailVerified(ctx context.Context, id string, verifiedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET email_verified_at = ?, confirmation_token = NULL, updated_at = ?
		 WHERE id = ?`,
		verifiedAt.UTC(), time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("mark email verified: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	user := &domain.User{}
	var verifiedAt sql.NullTime
	var confirmationToken sql.NullString

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash,
		&verifiedAt, &confirmationToken, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	if verifiedAt.Valid {
		t := verifiedAt.Time
		user.EmailVerifiedAt = &t
	}
	if confirmationToken.Valid {
		s := confirmationToken.String
		user.ConfirmationToken = &s
	}
	return user, nil
}

// isUniqueConstraintError checks if the error is a SQLite unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "unique constraint")
}
