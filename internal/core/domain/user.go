package domain

import "time"

// UserRole distinguishes regular users from administrators.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is an authentication principal.
type User struct {
	UserID       string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}
