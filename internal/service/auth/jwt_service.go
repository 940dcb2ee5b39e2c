package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskslite/tasks-lite-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token carrying the user's
	// identity claims (id, email, names). Returns the token string or an
	// error if signing fails.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Verification is all-or-nothing: a bad signature, wrong
	// issuer/audience, or expiry each fail the whole token.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// TokenLifetime reports the configured access token lifetime, used to
	// populate the expiresIn field of auth responses.
	TokenLifetime() time.Duration
}

// Claims represents the identity claims embedded in a token: the minimal
// user attributes needed to act on the user's behalf, plus the standard
// registered claims.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Identity attributes mirrored from the user record at issuance time.
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
