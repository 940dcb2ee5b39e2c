// Package middleware provides the HTTP middleware used by the API:
// bearer-token authentication, CORS headers, and request tracing.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/taskslite/tasks-lite-api/internal/api/shared"
	"github.com/taskslite/tasks-lite-api/internal/domain"
	"github.com/taskslite/tasks-lite-api/internal/platform/logger"
	"github.com/taskslite/tasks-lite-api/internal/service/auth"
	"github.com/taskslite/tasks-lite-api/internal/store"
)

// AuthMiddleware protects routes with bearer-token authentication. The
// token is verified and re-resolved against the live user store, so a
// deleted user's still-unexpired tokens are rejected.
type AuthMiddleware struct {
	authenticator *auth.Authenticator
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(authenticator *auth.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
	}
}

// Authenticate extracts the bearer token from the Authorization header,
// resolves it to a live user, and stores the identity in the request
// context. Token problems and a vanished user both answer 401; the
// response messages do not reveal which check failed beyond the
// no-token/invalid-token/user-gone distinction the API has always made.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := extractBearerToken(r.Header.Get("Authorization"))
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		user, err := m.authenticator.Authenticate(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrUserNotFound):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Access denied. User not found.")
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrExpiredToken),
				errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Access denied. Invalid token.")
			default:
				log := logger.FromContext(r.Context())
				log.Error("failed to authenticate request", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		identity := publicIdentity(user)
		ctx := context.WithValue(r.Context(), shared.UserContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken pulls the token out of an "Authorization: Bearer x"
// header. Returns false when the header is absent or not bearer-shaped.
func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// publicIdentity copies the user with all credential material stripped.
// Downstream handlers only ever see the public fields.
func publicIdentity(user *domain.User) *domain.User {
	identity := *user
	identity.Password = ""
	identity.HashedPassword = ""
	return &identity
}
