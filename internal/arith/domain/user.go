package domain

import "time"

type User struct {
	ID           string // ULID
	Username     string
	Email        *string // optional, unique when set
	PasswordHash string  // argon2id PHC string
	CreatedAt    time.Time
}
