package domain

import (
	"errors"
	"time"
)

// Role classifies a user for display and reporting. The access evaluator
// never consults it: authorization is decided by Level and IsHR alone.
type Role string

const (
	RoleCEO      Role = "CEO"
	RoleManager  Role = "MANAGER"
	RoleEngineer Role = "ENGINEER"
	RoleIntern   Role = "INTERN"
	RoleHR       Role = "HR"
	RoleUnknown  Role = "UNKNOWN"
)

var knownRoles = map[Role]struct{}{
	RoleCEO:      {},
	RoleManager:  {},
	RoleEngineer: {},
	RoleIntern:   {},
	RoleHR:       {},
}

// ParseRole maps a raw role string to a known Role, falling back to
// RoleUnknown rather than carrying arbitrary values through the system.
func ParseRole(s string) Role {
	r := Role(s)
	if _, ok := knownRoles[r]; ok {
		return r
	}
	return RoleUnknown
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrLoginThrottled = errors.New("too many login attempts")

// User models a provisioned identity with its authorization attributes.
// Records are immutable during steady-state serving; provisioning happens
// at seed time or through an external admin action.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Level        int       `json:"level"`
	IsHR         bool      `json:"is_hr"`
	CreatedAt    time.Time `json:"created_at"`
}
