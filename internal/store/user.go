package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskslite/tasks-lite-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password; the caller (auth flow) is responsible for validation
	// and hashing so that no partial writes occur.
	// Returns ErrEmailExists if the normalized email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address. The lookup is
	// case-insensitive.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update replaces an existing user's record. The caller must provide a
	// complete user object including HashedPassword.
	// Returns ErrUserNotFound if the user does not exist and ErrEmailExists
	// when updating to an email that belongs to another user.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
