package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasker-api/internal/config"
	"github.com/phrazzld/tasker-api/internal/platform/postgres"
	"github.com/phrazzld/tasker-api/internal/service/auth"
	"github.com/phrazzld/tasker-api/internal/store"
)

// application bundles the process-wide dependencies. Everything in it
// is constructed once at startup and injected into handlers; nothing
// is reached through package-level singletons.
type application struct {
	config           *config.Config
	logger           *slog.Logger
	db               *sql.DB
	userStore        store.UserStore
	taskStore        store.TaskStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication wires the stores and services on top of the open
// database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	passwordHasher, err := auth.NewBcryptHasher(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        postgres.NewPostgresUserStore(db, logger),
		taskStore:        postgres.NewPostgresTaskStore(db, logger),
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// cleanup releases process-wide resources on shutdown.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", "error", err)
		return
	}
	app.logger.Info("Database connection closed")
}
