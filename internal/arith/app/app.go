package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/arith/internal/arith/http"
	"github.com/aussiebroadwan/arith/internal/arith/service"
	"github.com/aussiebroadwan/arith/internal/arith/store"
	"github.com/aussiebroadwan/arith/internal/arith/store/drivers/postgres"
	"github.com/aussiebroadwan/arith/internal/arith/store/drivers/sqlite"
	"github.com/aussiebroadwan/arith/pkg/cryptox"
	"github.com/aussiebroadwan/arith/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags "-X".
var BuildVersion = "v0.1.0"

// Application owns the process-wide state: logger, database handle and
// signing secret. Everything else is built from these in New.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	tokenService      *service.TokenService
	userService       *service.UserService
	historyService    *service.HistoryService
	calculatorService *service.CalculatorService

	server *http.Server
	router *httpapi.Router
}

// New validates cfg, opens and migrates the database and wires the services
// and router.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg:    cfg,
		logger: newLogger(cfg),
	}

	if err := cryptox.LoadPepper(cfg.PepperFile); err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	db, err := OpenStore(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	app.logger.Info("database migrations applied successfully")

	if err := app.initServices(); err != nil {
		_ = db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

func newLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "arith",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// OpenStore opens the store named by cfg.DatabaseURL without migrating it.
func OpenStore(ctx context.Context, cfg Config) (store.Store, error) {
	pool := store.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	}

	switch driver, dsn := cfg.databaseDriver(); driver {
	case "postgres":
		st, err := postgres.Open(ctx, dsn, pool)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		return st, nil
	default:
		st, err := sqlite.NewStore(dsn, pool)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		return st, nil
	}
}

// Migrate applies the schema for cfg and exits without serving.
func Migrate(cfg Config) error {
	logger := newLogger(cfg)

	db, err := OpenStore(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}
	logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() error {
	secret := []byte(app.cfg.JWTSecret)
	if len(secret) == 0 {
		ephemeral, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("failed to generate signing secret: %w", err)
		}
		secret = []byte(ephemeral)
		app.logger.Warn("JWT_SECRET not set, using an ephemeral secret; tokens will not survive a restart")
	}

	tokens, err := service.NewTokenService(secret, app.cfg.Issuer, app.cfg.TokenTTL, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	app.tokenService = tokens
	app.userService = &service.UserService{Store: app.db}
	app.historyService = &service.HistoryService{Store: app.db}
	app.calculatorService = &service.CalculatorService{History: app.historyService}
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.TokenService = app.tokenService
	router.UserService = app.userService
	router.HistoryService = app.historyService
	router.CalculatorService = app.calculatorService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// Handler exposes the fully wired router, mostly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("arith service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down arith service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("arith service stopped")
	return nil
}
