package accounts

import (
	"context"

	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/storage"
)

// RegisterInput is the payload of a public sign-up.
type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	// Password may be empty, which creates an account without a usable password.
	Password string
	// Role defaults to domain.RoleUser.
	Role     domain.Role
	Deleted  bool
	IsActive *bool
}

// UserPatch lists the fields an administrator may change. Nil fields are kept.
type UserPatch struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Role      *domain.Role
	Deleted   *bool
	IsActive  *bool
	Password  *string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string
	TokenType   string
}

// Accounts manages users and authentication.
//
//go:generate mockgen -package mockaccounts -source=interface.go -destination=mock/mockaccounts.go *
type Accounts interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	List(ctx context.Context, filter storage.UserFilter) ([]domain.User, error)
	Get(ctx context.Context, ID domain.UserID) (*domain.User, error)
	Update(ctx context.Context, actor *domain.User, ID domain.UserID, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, actor *domain.User, ID domain.UserID) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Authenticate resolves a bearer token to an active user.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	RecoverPassword(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, email, newPassword, token string) error
}
