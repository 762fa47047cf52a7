package handler

import (
	"net/http"

	"github.com/msomdec/geoservice-auth/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService) {
	authHandler := NewAuthHandler(auth)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("GET /api/auth/confirm-email", authHandler.HandleConfirmEmail)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)

	mux.Handle("GET /api/auth/verify-token", RequireAuth(auth, http.HandlerFunc(authHandler.HandleVerifyToken)))
	mux.Handle("GET /api/auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))

	mux.HandleFunc("GET /healthz", HandleHealthz)
}
