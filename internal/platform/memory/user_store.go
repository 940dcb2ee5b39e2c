package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/taskslite/tasks-lite-api/internal/domain"
	"github.com/taskslite/tasks-lite-api/internal/store"
)

// UserStore is an in-memory implementation of store.UserStore.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]domain.User
	byEmail map[string]uuid.UUID // normalized email -> user ID
}

// Ensure UserStore implements the store interface.
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty in-memory user store. One instance is
// constructed at process start and shared across all requests.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[uuid.UUID]domain.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

// Create saves a new user. Returns store.ErrEmailExists if the normalized
// email is already taken, and store.ErrInvalidEntity if the user fails
// domain validation. The uniqueness check and the insert happen under the
// same write lock, so duplicates cannot slip in between them.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	if user.HashedPassword == "" {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyHashedPassword)
	}

	email := domain.NormalizeEmail(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return store.ErrEmailExists
	}
	if _, exists := s.byID[user.ID]; exists {
		return store.ErrDuplicate
	}

	stored := *user
	stored.Email = email
	stored.Password = "" // only the hash is ever persisted
	s.byID[user.ID] = stored
	s.byEmail[email] = user.ID
	return nil
}

// GetByID retrieves a user by ID. Returns store.ErrUserNotFound if absent.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, case-insensitively.
// Returns store.ErrUserNotFound if absent.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	user := s.byID[id]
	return &user, nil
}

// Update replaces an existing user's record. The email index is kept
// consistent when the email changes.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	email := domain.NormalizeEmail(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[user.ID]
	if !ok {
		return store.ErrUserNotFound
	}

	if email != current.Email {
		if _, taken := s.byEmail[email]; taken {
			return store.ErrEmailExists
		}
		delete(s.byEmail, current.Email)
		s.byEmail[email] = user.ID
	}

	stored := *user
	stored.Email = email
	stored.Password = ""
	s.byID[user.ID] = stored
	return nil
}

// Delete removes a user by ID. Returns store.ErrUserNotFound if absent.
func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return store.ErrUserNotFound
	}
	delete(s.byEmail, user.Email)
	delete(s.byID, id)
	return nil
}
