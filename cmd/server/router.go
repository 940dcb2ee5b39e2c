package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/taskslite/tasks-lite-api/internal/api"
	apiMiddleware "github.com/taskslite/tasks-lite-api/internal/api/middleware"
	"github.com/taskslite/tasks-lite-api/internal/api/shared"
)

// apiInfo describes the service for the root endpoint.
type apiInfo struct {
	Message   string              `json:"message"`
	Version   string              `json:"version"`
	Features  []string            `json:"features"`
	Endpoints map[string][]string `json:"endpoints"`
}

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)
	r.Use(apiMiddleware.CORS(app.config.Server.CORSOrigin))

	authHandler := api.NewAuthHandler(app.authService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.authenticator)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/users/register", authHandler.Register)
		r.Post("/users/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/profile", authHandler.Profile)

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", taskHandler.Create)
				r.Get("/", taskHandler.List)
				r.Get("/{id}", taskHandler.Get)
				r.Put("/{id}", taskHandler.Update)
				r.Delete("/{id}", taskHandler.Delete)
			})
		})
	})

	// Service description endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithData(w, r, http.StatusOK, apiInfo{
			Message:  "Tasks Lite API Server",
			Version:  "1.0.0",
			Features: []string{"JWT Authentication", "User Management", "Task Management"},
			Endpoints: map[string][]string{
				"auth": {
					"POST /api/users/register",
					"POST /api/users/login",
					"GET /api/users/profile (protected)",
				},
				"tasks": {
					"GET /api/tasks (protected)",
					"POST /api/tasks (protected)",
					"GET /api/tasks/{id} (protected)",
					"PUT /api/tasks/{id} (protected)",
					"DELETE /api/tasks/{id} (protected)",
				},
			},
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
