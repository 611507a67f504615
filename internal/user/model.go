package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrNameRequired       = errors.New("name is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidRole        = errors.New("invalid role")
)

// Role separates rental clients from administrators.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// User represents an account in the system.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin reports whether the user has the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
