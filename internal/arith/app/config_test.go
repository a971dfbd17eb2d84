package app

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "ENV", "JWT_SECRET", "ACCESS_TOKEN_EXPIRE_MINUTES", "TOKEN_ISSUER",
		"PEPPER_FILE", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "arith.db", cfg.DatabaseURL)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
	require.Equal(t, "arith", cfg.Issuer)
	require.Equal(t, 8000, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://arith:arith@db:5432/arith?sslmode=disable")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("PORT", "9000")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "2")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")

	cfg := LoadConfig()
	require.Equal(t, 5*time.Minute, cfg.TokenTTL)
	require.Equal(t, 9000, cfg.Port)
	require.Equal(t, 2*time.Minute, cfg.ShutdownGracePeriod)
	require.Equal(t, 90*time.Second, cfg.DBConnMaxLifetime)

	driver, dsn := cfg.databaseDriver()
	require.Equal(t, "postgres", driver)
	require.Equal(t, cfg.DatabaseURL, dsn)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	base := Config{DatabaseURL: "arith.db", Env: "development", TokenTTL: time.Minute, Port: 8000}

	t.Run("non-positive ttl", func(t *testing.T) {
		cfg := base
		cfg.TokenTTL = 0
		require.ErrorContains(t, cfg.Validate(), "ACCESS_TOKEN_EXPIRE_MINUTES")
	})

	t.Run("production needs a secret", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		require.ErrorContains(t, cfg.Validate(), "JWT_SECRET")

		cfg.JWTSecret = strings.Repeat("s", 32)
		require.NoError(t, cfg.Validate())
	})

	t.Run("short secret", func(t *testing.T) {
		cfg := base
		cfg.JWTSecret = "short"
		require.Error(t, cfg.Validate())
	})
}

func TestDatabaseDriver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url, driver, dsn string
	}{
		{"arith.db", "sqlite", "arith.db"},
		{"sqlite:///./arith.db", "sqlite", "./arith.db"},
		{"sqlite:///arith.db", "sqlite", "arith.db"},
		{"sqlite:////var/lib/arith.db", "sqlite", "/var/lib/arith.db"},
		{"sqlite://arith.db", "sqlite", "arith.db"},
		{"file:arith.db?mode=rwc", "sqlite", "file:arith.db?mode=rwc"},
		{"postgresql://u:p@h/db", "postgres", "postgresql://u:p@h/db"},
	}

	for _, tc := range tests {
		driver, dsn := Config{DatabaseURL: tc.url}.databaseDriver()
		require.Equal(t, tc.driver, driver, tc.url)
		require.Equal(t, tc.dsn, dsn, tc.url)
	}
}
