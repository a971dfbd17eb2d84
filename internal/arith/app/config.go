package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/arith/pkg/jwtx"
	"github.com/aussiebroadwan/arith/pkg/slogx"
)

type Config struct {
	DatabaseURL string        // sqlite path/URL or postgres:// URL (default: arith.db)
	Env         string        // development, test, staging, production (default: development)
	JWTSecret   string        // HS256 secret; required in production
	TokenTTL    time.Duration // access token lifetime (default: 30m)
	Issuer      string        // iss claim (default: arith)
	PepperFile  string        // password pepper file (default: ./pepper)
	LogLevel    string        // empty follows Env
	LogFormat   string        // empty follows Env
	Port        int           // HTTP port (default: 8000)

	ShutdownGracePeriod time.Duration // default: 10s

	DBMaxOpenConns    int           // default: 10
	DBMaxIdleConns    int           // default: 5
	DBConnMaxLifetime time.Duration // default: 30m
}

func LoadConfig() Config {
	return Config{
		DatabaseURL: getEnvOrDefault("DATABASE_URL", "arith.db"),
		Env:         getEnvOrDefault("ENV", "development"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL: time.Duration(
			getEnvIntOrDefault("ACCESS_TOKEN_EXPIRE_MINUTES", int(jwtx.DefaultAccessTokenTTL/time.Minute)),
		) * time.Minute,
		Issuer:              getEnvOrDefault("TOKEN_ISSUER", "arith"),
		PepperFile:          getEnvOrDefault("PEPPER_FILE", "pepper"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
		LogFormat:           os.Getenv("LOG_FORMAT"),
		Port:                getEnvIntOrDefault("PORT", 8000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		DBMaxOpenConns:      getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:      getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime:   getEnvDurationOrDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute),
	}
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %s", c.TokenTTL))
	}
	if slogx.IsProduction(c.Env) && c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required in production"))
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", jwtx.MinSecretLength))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		errs = append(errs, errors.New("DATABASE_URL is empty"))
	}

	return errors.Join(errs...)
}

// databaseDriver returns "postgres" or "sqlite" for DatabaseURL, along with
// the value to hand that driver.
func (c Config) databaseDriver() (string, string) {
	u := c.DatabaseURL
	switch {
	case strings.HasPrefix(u, "postgres://"), strings.HasPrefix(u, "postgresql://"):
		return "postgres", u
	case strings.HasPrefix(u, "sqlite:///"):
		// SQLAlchemy form: sqlite:///./arith.db is relative and
		// sqlite:////var/lib/arith.db is absolute.
		return "sqlite", strings.TrimPrefix(u, "sqlite:///")
	case strings.HasPrefix(u, "sqlite://"):
		return "sqlite", strings.TrimPrefix(u, "sqlite://")
	default:
		return "sqlite", u
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are read as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
