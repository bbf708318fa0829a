// Package config loads all runtime configuration from the environment.
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

	JWTSecret    string `env:"JWT_SECRET"`
	CookieSecret string `env:"COOKIE_SECRET"`
	CookieName   string `env:"COOKIE_NAME,       default=auth_token"`
	CookieDomain string `env:"COOKIE_DOMAIN,     default=localhost"`
	TokenTTLMin  int    `env:"TOKEN_TTL_MINUTES, default=5"`

	UploadDir string `env:"UPLOAD_DIR, default=uploads"`
	LogDir    string `env:"LOG_DIR,    default=logs"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=academic_records"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD, default="`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Validate reports missing secrets. Both are fatal startup conditions: the
// service must never run with unsigned tokens or cookies.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	if c.CookieSecret == "" {
		return errors.New("config: COOKIE_SECRET is required")
	}
	return nil
}

// TokenTTL returns the configured session lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMin) * time.Minute
}
