package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/geoservice-auth/internal/config"
	"github.com/msomdec/geoservice-auth/internal/domain"
	"github.com/msomdec/geoservice-auth/internal/handler"
	"github.com/msomdec/geoservice-auth/internal/mailer"
	"github.com/msomdec/geoservice-auth/internal/repository/sqlite"
	"github.com/msomdec/geoservice-auth/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	var mail domain.Mailer
	if cfg.SESSenderEmail != "" {
		sesMailer, err := mailer.NewSESMailer(context.Background(), cfg.SESSenderEmail, cfg.FrontendURL, cfg.AWSRegion)
		if err != nil {
			slog.Error("failed to initialize SES mailer", "error", err)
			os.Exit(1)
		}
		mail = sesMailer
	} else {
		slog.Warn("AWS_SES_SENDER_EMAIL not set, confirmation links will only be logged")
		mail = mailer.NewLogMailer(cfg.FrontendURL)
	}

	authService := service.NewAuthService(db.Users(), mail, cfg.JWTSecret, cfg.BcryptCost)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.RequestLogger(handler.Recover(handler.CORS(mux))),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
