package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskslite/tasks-lite-api/internal/config"
	"github.com/taskslite/tasks-lite-api/internal/platform/memory"
	"github.com/taskslite/tasks-lite-api/internal/service"
	"github.com/taskslite/tasks-lite-api/internal/service/auth"
	"github.com/taskslite/tasks-lite-api/internal/store"
)

// application holds all the shared application dependencies. The stores are
// constructed exactly once here and injected everywhere they are needed;
// there is no package-level mutable state.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	taskStore store.TaskStore

	// Services
	jwtService    auth.JWTService
	hasher        *auth.BcryptHasher
	authService   *auth.AuthService
	authenticator *auth.Authenticator
	userService   *service.UserService
}

// newApplication creates a new application instance with all dependencies
// initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.hasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.userStore = memory.NewUserStore()
	app.taskStore = memory.NewTaskStore()

	app.authService = auth.NewAuthService(app.userStore, app.hasher, app.hasher, app.jwtService, logger)
	app.authenticator = auth.NewAuthenticator(app.jwtService, app.userStore)
	app.userService = service.NewUserService(app.userStore, app.taskStore, logger)

	logger.Info("application initialized")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles shutdown of application resources. The stores are
// memory-resident, so there is nothing to flush; their contents are lost
// by design.
func (app *application) cleanup() {
	app.logger.Info("application shutdown completed")
}
