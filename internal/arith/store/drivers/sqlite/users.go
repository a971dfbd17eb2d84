package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/arith/internal/arith/domain"
)

type usersRepo struct {
	db *sql.DB
}

const createUser = `
INSERT INTO users (id, username, email, password_hash, created_at)
VALUES (?, ?, ?, ?, ?)`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, createUser,
		u.ID, u.Username, mapOptionalString(u.Email), u.PasswordHash, u.CreatedAt.UTC())
	return mapError(err)
}

const getUserByUsername = `
SELECT id, username, email, password_hash, created_at
FROM users
WHERE username = ?`

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var (
		u     domain.User
		email sql.NullString
	)
	err := r.db.QueryRowContext(ctx, getUserByUsername, username).
		Scan(&u.ID, &u.Username, &email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Email = mapNullStringPtr(email)
	return u, nil
}
