package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/arith/internal/arith/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrUnavailable marks transient failures (connection lost, database busy).
	// It is the only store error worth retrying.
	ErrUnavailable = errors.New("store: unavailable")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this and expose one sub-repository per table.
//
// Every write is a single statement, so there is no transaction API.
type Store interface {
	Users() Users
	Operations() Operations

	ApplyMigrations() error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// PoolOptions tune the database/sql connection pool. Zero values keep the
// database/sql defaults.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type Users interface {
	// CreateUser inserts a new user. Returns ErrAlreadyExists when the
	// username or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

type Operations interface {
	// RecordOperation appends rec to its user's history and returns it with
	// the assigned ID. Returns ErrNotFound when rec.Username has no user row.
	RecordOperation(ctx context.Context, rec domain.OperationRecord) (domain.OperationRecord, error)

	// ListOperationsByUsername returns the user's history oldest first. It
	// returns an empty, non-nil slice when there is none.
	ListOperationsByUsername(ctx context.Context, username string) ([]domain.OperationRecord, error)
}
