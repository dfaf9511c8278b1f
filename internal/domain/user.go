package domain

import "time"

// User represents a registered account. Passwords are stored only as bcrypt
// hashes.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
