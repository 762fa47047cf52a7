package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/msomdec/geoservice-auth/internal/domain"
	"github.com/msomdec/geoservice-auth/internal/service"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleRegister processes a JSON registration request.
// POST /api/auth/register
// Request:  {"email":"...","password":"...","name":"..."}
// Response: {"message":"..."}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.auth.Register(r.Context(), req.Email, req.Name, req.Password); err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			writeError(w, http.StatusConflict, "Email is already in use.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Invalid registration data.")
			return
		}
		slog.Error("register user", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not register the user.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Registration accepted. Please check your inbox to confirm your email address.",
	})
}

// HandleConfirmEmail consumes a confirmation token.
// GET /api/auth/confirm-email?token=...
// Response: {"message":"..."}
func (h *AuthHandler) HandleConfirmEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	if err := h.auth.ConfirmEmail(r.Context(), token); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Confirmation token is required.")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Confirmation token not found or already used.")
			return
		}
		slog.Error("confirm email", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not confirm the email address.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Email address confirmed. You can now log in.",
	})
}

// HandleLogin processes a JSON login request.
// POST /api/auth/login
// Request:  {"email":"...","password":"..."}
// Response: {"user": {...}, "token": "..."}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found.")
		case errors.Is(err, domain.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Invalid password.")
		case errors.Is(err, domain.ErrEmailNotVerified):
			writeError(w, http.StatusForbidden, "Email address has not been verified.")
		default:
			slog.Error("login user", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":  toUserDTO(user),
		"token": token,
	})
}

// HandleVerifyToken resolves the authenticated identity back into a
// user projection.
// GET /api/auth/verify-token
// Response: {"user": {"id","name","email"}}
func (h *AuthHandler) HandleVerifyToken(w http.ResponseWriter, r *http.Request) {
	payload, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	user, err := h.auth.GetProfile(r.Context(), payload.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found.")
			return
		}
		slog.Error("verify token", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toProfileDTO(user),
	})
}

// HandleMe greets the authenticated user.
// GET /api/auth/me
// Response: {"message":"..."}
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	payload, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Hello! Your user ID is %s.", payload.ID),
	})
}
