package domain

import "time"

// User is a registered account. PasswordHash is never serialized.
type User struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"pw_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
