// Package accounts implements user management, password policy and
// authentication (password login, bearer tokens and password recovery).
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/mailer"
	"plasmodocking/pkg/serrors"
	"plasmodocking/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure the accounts service.
type Options struct {
	// MailFrom is the sender of account emails.
	MailFrom string
	// PasswordResetURL is linked from recovery emails when set.
	PasswordResetURL string
	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

type accounts struct {
	options Options
	storage storage.Storage
	jwt     *JWT
	tokens  *ResetTokens
	mailer  mailer.Mailer
}

// Ensure accounts implements Accounts.
var _ Accounts = (*accounts)(nil)

func (a *accounts) now() time.Time {
	if a.options.Now != nil {
		return a.options.Now()
	}

	return time.Now()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func passwordError(problems []string) error {
	return serrors.With(serrors.ErrBadRequest, "%s", strings.Join(problems, " "))
}

// Register creates a user. Duplicate usernames or emails are reported as conflicts.
func (a *accounts) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	user := domain.User{
		Username:  strings.TrimSpace(input.Username),
		Email:     normalizeEmail(input.Email),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      input.Role,
		Deleted:   input.Deleted,
		IsActive:  true,
	}
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	if !user.Role.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid role %q", input.Role)
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if user.Username == "" || user.Email == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "username and email are required")
	}

	if input.Password == "" {
		user.PasswordHash = UnusablePassword()
	} else {
		if problems := ValidatePassword(input.Password, &user); len(problems) > 0 {
			return nil, passwordError(problems)
		}

		hash, err := HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	created, err := a.storage.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	logger.Info(ctx, "user registered", zap.String("userID", created.ID.String()))

	return created, nil
}

// List returns users matching filter.
func (a *accounts) List(ctx context.Context, filter storage.UserFilter) ([]domain.User, error) {
	users, err := a.storage.ListUsers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	return users, nil
}

// Get returns a single user.
func (a *accounts) Get(ctx context.Context, ID domain.UserID) (*domain.User, error) {
	user, err := a.storage.UserByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// Update applies patch to a user. Only staff may update users.
func (a *accounts) Update(ctx context.Context,
	actor *domain.User,
	ID domain.UserID,
	patch UserPatch,
) (*domain.User, error) {
	if actor == nil || !actor.HasStaffAccess() {
		return nil, serrors.With(serrors.ErrForbidden, "only staff can update users")
	}

	current, err := a.Get(ctx, ID)
	if err != nil {
		return nil, err
	}

	updates := storage.UserUpdates{
		FirstName: patch.FirstName,
		LastName:  patch.LastName,
		Deleted:   patch.Deleted,
		IsActive:  patch.IsActive,
	}
	if patch.Username != nil {
		username := strings.TrimSpace(*patch.Username)
		if username == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "username cannot be blank")
		}
		updates.Username = &username
		current.Username = username
	}
	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		if email == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "email cannot be blank")
		}
		updates.Email = &email
		current.Email = email
	}
	if patch.Role != nil {
		if !patch.Role.Valid() {
			return nil, serrors.With(serrors.ErrBadRequest, "invalid role %q", *patch.Role)
		}
		updates.Role = patch.Role
	}
	if patch.Password != nil && *patch.Password != "" {
		if problems := ValidatePassword(*patch.Password, current); len(problems) > 0 {
			return nil, passwordError(problems)
		}

		hash, err := HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		updates.PasswordHash = &hash
	}

	user, err := a.storage.UpdateUser(ctx, ID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// Delete removes a user and its processes. Only staff may delete users.
func (a *accounts) Delete(ctx context.Context, actor *domain.User, ID domain.UserID) error {
	if actor == nil || !actor.HasStaffAccess() {
		return serrors.With(serrors.ErrForbidden, "only staff can delete users")
	}

	deleted, err := a.storage.DeleteUser(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "user not found")
	}

	return nil
}

// Login checks the credentials and issues an access token.
func (a *accounts) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := a.storage.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "Invalid credentials")
	}

	ok, err := CheckPassword(password, user.PasswordHash)
	if err != nil {
		logger.Warn(ctx, "could not check password", zap.String("userID", user.ID.String()), zap.Error(err))
	}
	if !ok {
		return nil, serrors.With(serrors.ErrUnauthorized, "Invalid credentials")
	}

	if !user.CanLogin() {
		return nil, serrors.With(serrors.ErrUnauthorized, "User is inactive or deleted")
	}

	token, err := a.jwt.Issue(user.ID.String(), a.now())
	if err != nil {
		return nil, fmt.Errorf("could not issue token: %w", err)
	}

	return &LoginResult{AccessToken: token, TokenType: "Bearer"}, nil
}

// Authenticate resolves a bearer token to an active, non-deleted user.
func (a *accounts) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	sub, err := a.jwt.Verify(token)
	if err != nil {
		return nil, err
	}

	ID, err := uuid.Parse(sub)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	user, err := a.storage.UserByID(ctx, domain.UserID(ID))
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "user not found")
	}
	if !user.CanLogin() {
		return nil, serrors.With(serrors.ErrUnauthorized, "User is inactive or deleted")
	}

	return user, nil
}

// RecoverPassword emails a reset token to the owner of email.
func (a *accounts) RecoverPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := a.storage.UserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return serrors.With(serrors.ErrNotFound, "User not found")
	}

	token := a.tokens.Make(user, a.now())
	html, err := recoveryHTML(a.options.PasswordResetURL, email, token)
	if err != nil {
		return err
	}

	_, err = a.mailer.Send(ctx, mailer.Message{
		From:    a.options.MailFrom,
		To:      []string{email},
		Subject: recoverySubject,
		HTML:    html,
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, serrors.ErrBadGateway), errors.Is(err, serrors.ErrRateLimited):
		logger.Error(ctx, "email provider rejected recovery email", zap.Error(err))

		return serrors.Wrap(serrors.ErrBadGateway, err, "Email service error")
	default:
		logger.Error(ctx, "could not send recovery email", zap.Error(err))

		return serrors.Wrap(serrors.ErrBadGateway, err, "Internal email error")
	}
}

// UpdatePassword sets a new password when token is valid for the user.
func (a *accounts) UpdatePassword(ctx context.Context, email, newPassword, token string) error {
	user, err := a.storage.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return serrors.With(serrors.ErrNotFound, "User not found")
	}

	if !a.tokens.Check(user, token, a.now()) {
		return serrors.With(serrors.ErrBadRequest, "Invalid or expired token")
	}

	if problems := ValidatePassword(newPassword, user); len(problems) > 0 {
		return passwordError(problems)
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	if _, err := a.storage.UpdateUser(ctx, user.ID, storage.UserUpdates{PasswordHash: &hash}); err != nil {
		return fmt.Errorf("could not update password: %w", err)
	}

	logger.Info(ctx, "password updated", zap.String("userID", user.ID.String()))

	return nil
}

// New creates an Accounts service.
func New(strg storage.Storage, j *JWT, tokens *ResetTokens, m mailer.Mailer, options Options) Accounts {
	return &accounts{
		options: options,
		storage: strg,
		jwt:     j,
		tokens:  tokens,
		mailer:  m,
	}
}
