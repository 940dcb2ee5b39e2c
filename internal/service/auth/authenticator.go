package auth

import (
	"context"

	"github.com/taskslite/tasks-lite-api/internal/domain"
	"github.com/taskslite/tasks-lite-api/internal/store"
)

// Authenticator resolves bearer tokens to live users. Beyond verifying the
// token itself, it re-checks the user against the live store so that
// deleting a user revokes access before their tokens expire.
type Authenticator struct {
	jwtService JWTService
	userStore  store.UserStore
}

// NewAuthenticator creates a new Authenticator with the given dependencies.
func NewAuthenticator(jwtService JWTService, userStore store.UserStore) *Authenticator {
	return &Authenticator{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates the raw bearer token and resolves it to the
// current user record. Returns ErrMissingToken for an empty token, a token
// validation error (ErrInvalidToken, ErrExpiredToken, ...) when
// verification fails, and store.ErrUserNotFound when the token is valid but
// the user no longer exists. The returned identity never carries a
// plaintext password.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	claims, err := a.jwtService.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := a.userStore.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
