package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/curanet")
	unset(t, "PORT", "ORIGIN", "APP_ENV", "LOG_LEVEL", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_AUTO_MIGRATE", "REDIS_URL", "CACHE_TTL_SECONDS", "JWT_SECRET", "JWT_EXPIRATION_MINUTES")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Origins)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 300*time.Second, cfg.Cache.TTL)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "root:secret@tcp(db:3306)/curanet?parseTime=True")
	t.Setenv("PORT", "9090")
	t.Setenv("ORIGIN", "http://a.test, http://b.test ,")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("CACHE_TTL_SECONDS", "30")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins)
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.True(t, cfg.AuthEnabled())
}

func TestLoadConfig_InvalidNumber(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/curanet")
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "DB_MAX_OPEN_CONNS")
}

// unset removes keys for the duration of the test; t.Setenv restores them afterwards.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadAuth(t *testing.T) {
	unset(t, "DATABASE_URL")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")

	auth, err := LoadAuth()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", auth.JWTSecret)
	assert.Equal(t, 15*time.Minute, auth.TokenTTL())

	t.Setenv("JWT_EXPIRATION_MINUTES", "soon")
	_, err = LoadAuth()
	assert.ErrorContains(t, err, "JWT_EXPIRATION_MINUTES")
}
