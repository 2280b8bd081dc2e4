package storage

import (
	"context"
	"time"

	"plasmodocking/pkg/domain"
)

// UserFilter narrows ListUsers.
type UserFilter struct {
	// Search matches username, email, first and last name (case-insensitive contains).
	Search string
	// OrderBy accepts username, date_joined and last_login.
	OrderBy []Order
	Page
}

// UserUpdates describes optional fields applied by UpdateUser. Only non-nil
// fields are written.
type UserUpdates struct {
	Username     *string
	Email        *string
	FirstName    *string
	LastName     *string
	Role         *domain.Role
	PasswordHash *string
	Deleted      *bool
	IsActive     *bool
	IsStaff      *bool
	IsSuperuser  *bool
	LastLogin    *time.Time
}

// UserStorage persists user accounts. Username and email are unique; the
// email comparison is case-insensitive. Implementations report uniqueness
// violations as serrors.ErrConflict.
type UserStorage interface {
	// CreateUser inserts a user and returns the stored row.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns the user or nil when it does not exist.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UserByEmail looks a user up by email ignoring case. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByUsername returns the user with the exact username or nil.
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	// ListUsers returns users matching the filter.
	ListUsers(ctx context.Context, filter UserFilter) ([]domain.User, error)
	// UpdateUser applies updates and returns the updated row, or nil when not found.
	UpdateUser(ctx context.Context, ID domain.UserID, updates UserUpdates) (*domain.User, error)
	// DeleteUser removes the user and, through cascading, its processes.
	// It reports whether a row was deleted.
	DeleteUser(ctx context.Context, ID domain.UserID) (bool, error)
}
