package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables, applies defaults,
// and validates the result. Environment variables take precedence over
// defaults. Keys are read with the TASKSLITE_ prefix
// (e.g. TASKSLITE_SERVER_PORT); a handful of bare legacy names (PORT,
// JWT_SECRET, ...) are honored as fallbacks for deployment compatibility.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 3001)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_origin", "http://localhost:3000")
	v.SetDefault("auth.jwt_secret", DefaultJWTSecret)
	v.SetDefault("auth.token_lifetime_minutes", 24*60)
	v.SetDefault("auth.bcrypt_cost", 12)

	v.SetEnvPrefix("TASKSLITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Legacy variable names take effect only when the prefixed form is unset.
	bindings := map[string][]string{
		"server.port":                 {"TASKSLITE_SERVER_PORT", "PORT"},
		"server.log_level":            {"TASKSLITE_SERVER_LOG_LEVEL", "LOG_LEVEL"},
		"server.cors_origin":          {"TASKSLITE_SERVER_CORS_ORIGIN", "CORS_ORIGIN"},
		"auth.jwt_secret":             {"TASKSLITE_AUTH_JWT_SECRET", "JWT_SECRET"},
		"auth.token_lifetime_minutes": {"TASKSLITE_AUTH_TOKEN_LIFETIME_MINUTES", "JWT_EXPIRES_IN_MINUTES"},
		"auth.bcrypt_cost":            {"TASKSLITE_AUTH_BCRYPT_COST", "BCRYPT_COST"},
	}
	for key, names := range bindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
