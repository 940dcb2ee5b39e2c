package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskslite/tasks-lite-api/internal/domain"
	"github.com/taskslite/tasks-lite-api/internal/store"
)

// AuthResult is the outcome of a successful registration or login: the user
// (hash stripped), a freshly issued token, and the token's lifetime.
type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresIn time.Duration
}

// AuthService orchestrates registration and login over the user store,
// password hasher, and token service.
type AuthService struct {
	userStore  store.UserStore
	hasher     PasswordHasher
	verifier   PasswordVerifier
	jwtService JWTService
	logger     *slog.Logger
}

// NewAuthService creates a new AuthService with the given dependencies.
func NewAuthService(
	userStore store.UserStore,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	jwtService JWTService,
	logger *slog.Logger,
) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		userStore:  userStore,
		hasher:     hasher,
		verifier:   verifier,
		jwtService: jwtService,
		logger:     logger.With(slog.String("component", "auth_service")),
	}
}

// Register validates the input, hashes the password, persists the user, and
// issues a token. Validation runs in full before any mutation, so partial
// writes never occur. If token issuance fails after the user was persisted,
// the user stays persisted and the error is returned; registration and
// token issuance are deliberately not transactional.
func (s *AuthService) Register(
	ctx context.Context,
	firstName, lastName, email, password string,
) (*AuthResult, error) {
	user, err := domain.NewUser(firstName, lastName, email, password)
	if err != nil {
		return nil, err
	}

	// Hashing is CPU-bound; it happens here, never under a store lock.
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(ctx, user)
	if err != nil {
		s.logger.Error("user persisted but token issuance failed",
			"error", err,
			"user_id", user.ID)
		return nil, err
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"email", user.Email)

	return &AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: s.jwtService.TokenLifetime(),
	}, nil
}

// Login authenticates an email/password pair and issues a fresh token.
// Unknown email and wrong password both return ErrInvalidCredentials; the
// caller cannot tell which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return &AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: s.jwtService.TokenLifetime(),
	}, nil
}
