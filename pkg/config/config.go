package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	// devJWTSecret signs tokens outside of production only.
	devJWTSecret = "dev-secret-key-change-in-production"
)

// ErrMissingJWTSecret is returned by Load when production runs without JWT_SECRET.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set in production")

// Config is built once at startup and never mutated afterwards.
type Config struct {
	Port             string
	DatabaseURL      string
	Environment      string
	JWTSecret        string
	JWTExpiry        time.Duration
	CORSOrigins      []string
	LogLevel         string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
}

// IsProduction reports whether the hardened environment tier is active.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "3000"),
		DatabaseURL:      getEnv("DB_URL", "file:mesto.db?cache=shared"),
		Environment:      getEnv("APP_ENV", EnvDevelopment),
		JWTExpiry:        getDuration("JWT_EXPIRY", 7*24*time.Hour),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		HTTPReadTimeout:  getDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		HTTPWriteTimeout: getDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
	}

	secret := os.Getenv("JWT_SECRET")
	if cfg.IsProduction() {
		if secret == "" {
			return nil, ErrMissingJWTSecret
		}
		cfg.JWTSecret = secret
	} else {
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
