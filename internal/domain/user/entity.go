// internal/domain/user/entity.go
package user

import (
	"strings"
	"time"
)

// Role is the closed set of account roles
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleMember  Role = "member"
	RoleCourier Role = "courier"
)

// Valid reports whether the role is a known value
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleCourier:
		return true
	}
	return false
}

// User represents an account in the mock user store
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Don't return in JSON
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Role         Role       `json:"role"`
	Address      string     `json:"address,omitempty"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NormalizeEmail lowercases and trims an email for lookup
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
