// Package main implements the entry point for the Tasks Lite API server:
// user registration/login with JWT sessions and per-user task management
// over in-memory stores.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/taskslite/tasks-lite-api/internal/config"
	"github.com/taskslite/tasks-lite-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run loads configuration, sets up logging, wires the application, and
// starts the HTTP server. It returns when the server has shut down.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		appLogger.Warn("using the default development JWT secret; set JWT_SECRET in production")
	}

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(context.Background())
}
