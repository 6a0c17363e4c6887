package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleUser          = "user"
	RoleBusinessOwner = "businessOwner"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrInvalidRole = errors.New("invalid role")
var ErrMissingFields = errors.New("required fields missing")

// User models a registered account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeRole maps any casing of "businessowner" to RoleBusinessOwner and
// defaults an empty role to RoleUser. Other values pass through unchanged so
// the caller can reject them.
func NormalizeRole(role string) string {
	if role == "" {
		return RoleUser
	}
	if strings.EqualFold(role, RoleBusinessOwner) {
		return RoleBusinessOwner
	}
	return role
}

// ValidRole reports whether role is one of the two accepted values.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleBusinessOwner
}
