package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/taskslite/tasks-lite-api/internal/api"
	apiMiddleware "github.com/taskslite/tasks-lite-api/internal/api/middleware"
	"github.com/taskslite/tasks-lite-api/internal/config"
	"github.com/taskslite/tasks-lite-api/internal/platform/memory"
	"github.com/taskslite/tasks-lite-api/internal/service/auth"
	"github.com/taskslite/tasks-lite-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// testEnv wires real stores and services behind the production routes so
// handler tests exercise the same code paths as a running server.
type testEnv struct {
	router      http.Handler
	userStore   store.UserStore
	taskStore   store.TaskStore
	authService *auth.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	userStore := memory.NewUserStore()
	taskStore := memory.NewTaskStore()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-secret-that-is-at-least-32-characters-long",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	authService := auth.NewAuthService(userStore, hasher, hasher, jwtService, nil)
	authenticator := auth.NewAuthenticator(jwtService, userStore)

	authHandler := api.NewAuthHandler(authService, nil)
	taskHandler := api.NewTaskHandler(taskStore, nil)
	authMiddleware := apiMiddleware.NewAuthMiddleware(authenticator)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/users/register", authHandler.Register)
		r.Post("/users/login", authHandler.Login)

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

	return &testEnv{
		router:      r,
		userStore:   userStore,
		taskStore:   taskStore,
		authService: authService,
	}
}

// registerUser creates an account through the service layer and returns its
// bearer token.
func (e *testEnv) registerUser(t *testing.T, email string) (*auth.AuthResult, string) {
	t.Helper()
	result, err := e.authService.Register(context.Background(), "Jane", "Doe", email, "secret1")
	require.NoError(t, err)
	return result, "Bearer " + result.Token
}
