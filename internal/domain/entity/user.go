package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account of the invoicing backend.
// PasswordHash is always a bcrypt hash; a User carrying a plaintext password
// cannot be constructed (see auth.NewUser) and the hash is never serialized outward.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string // admin, user
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
