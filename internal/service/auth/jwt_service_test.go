package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskslite/tasks-lite-api/internal/config"
	"github.com/taskslite/tasks-lite-api/internal/domain"
)

const testJWTSecret = "test-secret-that-is-at-least-32-characters-long"

func newTestJWTService(t *testing.T) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            testJWTSecret,
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	return svc.(*hmacJWTService)
}

func testUser(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser("Jane", "Doe", "jane@x.com", "secret1")
	require.NoError(t, err)
	return user
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	_, err := NewJWTService(config.AuthConfig{
		JWTSecret:            "too-short",
		TokenLifetimeMinutes: 60,
	})
	assert.Error(t, err)
}

func TestJWTServiceRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestJWTService(t)
	user := testUser(t)

	token, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.FirstName, claims.FirstName)
	assert.Equal(t, user.LastName, claims.LastName)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt, time.Second)
}

func TestJWTServiceTokenIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	svc := newTestJWTService(t)
	user := testUser(t)

	first, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)
	second, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)

	firstClaims, err := svc.ValidateToken(ctx, first)
	require.NoError(t, err)
	secondClaims, err := svc.ValidateToken(ctx, second)
	require.NoError(t, err)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestJWTServiceExpiredToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestJWTService(t)
	user := testUser(t)

	issuedAt := time.Now().UTC()
	svc.timeFunc = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)

	// Still valid right up to lifetime + clock skew.
	svc.timeFunc = func() time.Time { return issuedAt.Add(svc.tokenLifetime + svc.clockSkew - time.Second) }
	_, err = svc.ValidateToken(ctx, token)
	assert.NoError(t, err)

	// One second past the leeway window it is expired.
	svc.timeFunc = func() time.Time { return issuedAt.Add(svc.tokenLifetime + svc.clockSkew + time.Second) }
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	ctx := context.Background()
	user := testUser(t)

	svc := newTestJWTService(t)
	token, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)

	other, err := NewJWTService(config.AuthConfig{
		JWTSecret:            "a-completely-different-32-char-secret-key",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	_, err = other.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceRejectsTamperedToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestJWTService(t)
	user := testUser(t)

	token, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.ValidateToken(ctx, tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	svc := newTestJWTService(t)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestJWTServiceTokenLifetime(t *testing.T) {
	svc := newTestJWTService(t)
	assert.Equal(t, time.Hour, svc.TokenLifetime())
}
