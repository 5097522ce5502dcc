package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingDatabaseURL is returned by LoadConfig when DATABASE_URL is unset.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

// Config holds all configuration for our application
type Config struct {
	Port        string
	Origins     []string
	Environment string
	LogLevel    string
	Database    DatabaseConfig
	Cache       CacheConfig
	Auth        AuthConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
}

// CacheConfig holds the optional Redis cache settings. An empty URL disables caching.
type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

// AuthConfig holds the optional JWT settings. An empty secret disables authentication.
type AuthConfig struct {
	JWTSecret            string
	JWTExpirationMinutes int
}

// Load reads a .env file when one exists and then loads the configuration
// from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return LoadConfig()
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	dbURL := strings.TrimSpace(getEnv("DATABASE_URL", ""))
	if dbURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	maxOpen, err := strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}

	maxIdle, err := strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}

	autoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_AUTO_MIGRATE: %w", err)
	}

	cacheTTL, err := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "300"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL_SECONDS: %w", err)
	}

	auth, err := loadAuth()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:        getEnv("PORT", "8000"),
		Origins:     splitList(getEnv("ORIGIN", "http://localhost:5173")),
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			URL:          dbURL,
			MaxOpenConns: maxOpen,
			MaxIdleConns: maxIdle,
			AutoMigrate:  autoMigrate,
		},
		Cache: CacheConfig{
			RedisURL: getEnv("REDIS_URL", ""),
			TTL:      time.Duration(cacheTTL) * time.Second,
		},
		Auth: auth,
	}, nil
}

// LoadAuth reads only the JWT settings, for commands that never touch the
// database.
func LoadAuth() (AuthConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return AuthConfig{}, fmt.Errorf("error loading .env file: %w", err)
	}
	return loadAuth()
}

func loadAuth() (AuthConfig, error) {
	jwtExpMinutes, err := strconv.Atoi(getEnv("JWT_EXPIRATION_MINUTES", "60"))
	if err != nil {
		return AuthConfig{}, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %w", err)
	}
	return AuthConfig{
		JWTSecret:            getEnv("JWT_SECRET", ""),
		JWTExpirationMinutes: jwtExpMinutes,
	}, nil
}

// TokenTTL is the lifetime of tokens minted by the token command.
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.JWTExpirationMinutes) * time.Minute
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AuthEnabled reports whether write routes require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.Auth.JWTSecret != ""
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
