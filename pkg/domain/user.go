package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical UUID representation.
func (id UserID) String() string { return uuid.UUID(id).String() }

// Role is the application level role of a user.
type Role string

const (
	// RoleUser is the default role for self registered accounts.
	RoleUser Role = "USER"
	// RoleAdmin marks application administrators.
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is an account that can authenticate against the API.
type User struct {
	ID        UserID
	Username  string
	Email     string
	FirstName string
	LastName  string
	Role      Role

	// PasswordHash is the encoded password hash. An empty value means the
	// account has no usable password.
	PasswordHash string

	Deleted     bool
	IsActive    bool
	IsStaff     bool
	IsSuperuser bool

	LastLogin  time.Time
	DateJoined time.Time
}

// CanLogin reports whether the account may authenticate.
func (u *User) CanLogin() bool {
	return u.IsActive && !u.Deleted
}

// HasStaffAccess reports whether the account may perform administrative writes.
func (u *User) HasStaffAccess() bool {
	return u.IsStaff || u.IsSuperuser
}
