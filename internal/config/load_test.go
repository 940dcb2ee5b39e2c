package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "http://localhost:3000", cfg.Server.CORSOrigin)
	assert.Equal(t, DefaultJWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 24*60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TASKSLITE_SERVER_PORT", "8080")
	t.Setenv("TASKSLITE_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TASKSLITE_AUTH_JWT_SECRET", "an-explicitly-configured-32-char-secret")
	t.Setenv("TASKSLITE_AUTH_TOKEN_LIFETIME_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "an-explicitly-configured-32-char-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadLegacyEnvironmentNames(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("JWT_SECRET", "a-legacy-configured-32-character-secret!")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "a-legacy-configured-32-character-secret!", cfg.Auth.JWTSecret)
}

func TestLoadPrefixedNameWinsOverLegacy(t *testing.T) {
	t.Setenv("TASKSLITE_SERVER_PORT", "8080")
	t.Setenv("PORT", "4000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"short_jwt_secret", "TASKSLITE_AUTH_JWT_SECRET", "too-short"},
		{"bad_log_level", "TASKSLITE_SERVER_LOG_LEVEL", "verbose"},
		{"port_out_of_range", "TASKSLITE_SERVER_PORT", "70000"},
		{"bcrypt_cost_too_low", "TASKSLITE_AUTH_BCRYPT_COST", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
