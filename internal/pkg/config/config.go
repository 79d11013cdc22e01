package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CORSOrigins is a comma-separated list of allowed browser origins.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000,http://localhost:5173"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
	Seed  SeedConfig
}

type AuthConfig struct {
	JWTSecret          string `env:"JWT_SECRET"`
	AccessTokenMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=30"`
}

// TokenTTL is the lifetime of an issued access token.
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.AccessTokenMinutes) * time.Minute
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tpe_manager"`
}

// RedisConfig configures the stats cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,        default=0"`
	StatsTTL time.Duration `env:"STATS_CACHE_TTL, default=30s"`
}

// SeedConfig describes the accounts created at start-up when none exist.
type SeedConfig struct {
	Enabled bool `env:"SEED_DEFAULT_ACCOUNTS, default=true"`

	AdminUsername string `env:"SEED_ADMIN_USERNAME, default=admin"`
	AdminEmail    string `env:"SEED_ADMIN_EMAIL,    default=admin@example.com"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=admin123"`

	UserUsername string `env:"SEED_USER_USERNAME, default=user"`
	UserEmail    string `env:"SEED_USER_EMAIL,    default=user@example.com"`
	UserPassword string `env:"SEED_USER_PASSWORD, default=user123"`
}

// IsProduction reports whether ENV selects the production profile.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Auth.AccessTokenMinutes <= 0 {
		return errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	return nil
}

// LoadWith reads configuration from lookuper using go-envconfig. Pass
// envconfig.OsLookuper() for the process environment.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
