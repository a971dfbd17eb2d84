package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/arith/internal/arith/store"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var _ store.Store = (*Store)(nil)

// Store implements store.Store backed by PostgreSQL.
type Store struct {
	db *sqlx.DB
}

// Open connects to dsn (a postgres:// URL or key=value string) and pings it.
func Open(ctx context.Context, dsn string, pool store.PoolOptions) (*Store, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if pool.MaxOpenConns > 0 {
		db.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		db.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", mapError(err))
	}
	return &Store{db: db}, nil
}

// New wraps an existing handle. The caller keeps ownership of driver setup.
func New(db *sql.DB) *Store {
	return &Store{db: sqlx.NewDb(db, "postgres")}
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return mapError(s.db.PingContext(ctx))
}

func (s *Store) Users() store.Users           { return &usersRepo{db: s.db} }
func (s *Store) Operations() store.Operations { return &operationsRepo{db: s.db} }
