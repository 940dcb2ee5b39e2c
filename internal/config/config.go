package config

// DefaultJWTSecret is the development-only signing secret used when none is
// configured. Production deployments must override it via JWT_SECRET.
const DefaultJWTSecret = "your-super-secret-jwt-key-change-this-in-production"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port       int    `mapstructure:"port"        validate:"required,gt=0,lt=65536"`
	LogLevel   string `mapstructure:"log_level"   validate:"required,oneof=debug info warn error"`
	CORSOrigin string `mapstructure:"cors_origin" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret signs all tokens. Rotating it invalidates every outstanding
	// token; there is no key versioning.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the access token lifetime. Default 1440 (24h).
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// BcryptCost is the work factor for password hashing. Higher is slower
	// and more brute-force resistant.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"required,gte=4,lte=31"`
}
