package slogx

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Service string
	Version string
	Env     string // development, test, staging, production
	Level   string // debug, info, warn, error; empty derives from Env
	Format  string // json, text; empty derives from Env

	// Output defaults to os.Stdout.
	Output io.Writer
}

// New returns a configured slog.Logger and installs it as the default.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{
		AddSource: IsDevelopment(cfg.Env),
		Level:     ResolveLevel(cfg.Level, cfg.Env),
	}

	var handler slog.Handler
	switch resolveFormat(cfg.Format, cfg.Env) {
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler).With(
		"service", cfg.Service,
		"version", cfg.Version,
		"env", cfg.Env,
	)

	slog.SetDefault(logger)
	return logger
}

// ResolveLevel maps an explicit level name to a slog.Level. When lvl is empty
// the level follows the environment: development logs debug, production
// only warnings and above, everything else info.
func ResolveLevel(lvl, env string) slog.Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	switch {
	case IsDevelopment(env):
		return slog.LevelDebug
	case IsProduction(env):
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func resolveFormat(format, env string) string {
	if f := strings.ToLower(format); f != "" {
		return f
	}
	if IsDevelopment(env) {
		return "text"
	}
	return "json"
}

// IsDevelopment reports whether env names a local development environment.
func IsDevelopment(env string) bool {
	switch strings.ToLower(env) {
	case "development", "dev", "local":
		return true
	}
	return false
}

// IsProduction reports whether env names a production deployment.
func IsProduction(env string) bool {
	switch strings.ToLower(env) {
	case "production", "prod":
		return true
	}
	return false
}
