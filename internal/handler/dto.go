package handler

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/msomdec/geoservice-auth/internal/domain"
)

// RegisterRequest is the JSON body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Validate will run validation rules. Only presence is checked; any
// non-empty email and password are accepted.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// UserDTO is the JSON representation of a user. The password hash is
// never part of any response payload.
type UserDTO struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	Name            string  `json:"name"`
	EmailVerifiedAt *string `json:"emailVerifiedAt"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	dto := UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
	if u.EmailVerifiedAt != nil {
		verified := u.EmailVerifiedAt.Format(time.RFC3339)
		dto.EmailVerifiedAt = &verified
	}
	return dto
}

// ProfileDTO is the projection returned by GET /api/auth/verify-token.
type ProfileDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toProfileDTO(u *domain.User) ProfileDTO {
	return ProfileDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}
