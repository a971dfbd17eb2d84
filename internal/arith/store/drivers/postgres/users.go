package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/arith/internal/arith/domain"
	"github.com/jmoiron/sqlx"
)

type usersRepo struct {
	db *sqlx.DB
}

type userRow struct {
	ID           string         `db:"id"`
	Username     string         `db:"username"`
	Email        sql.NullString `db:"email"`
	PasswordHash string         `db:"password_hash"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r userRow) toDomain() domain.User {
	u := domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt.UTC(),
	}
	if r.Email.Valid {
		email := r.Email.String
		u.Email = &email
	}
	return u
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	var email sql.NullString
	if u.Email != nil {
		email = sql.NullString{String: *u.Email, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Username, email, u.PasswordHash, u.CreatedAt.UTC())
	return mapError(err)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE username = $1
	`, username)
	if err != nil {
		return domain.User{}, mapError(err)
	}
	return row.toDomain(), nil
}
