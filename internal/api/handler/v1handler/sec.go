package v1handler

import (
	"context"
	"strings"

	"plasmodocking/internal/accounts"
	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/serrors"
)

type ctxKey string

// UserKey holds the authenticated *domain.User in the request context.
const UserKey ctxKey = "user"

// SecHandler resolves bearer tokens to users.
type SecHandler struct {
	accounts accounts.Accounts
}

func NewSecHandler(accounts accounts.Accounts) *SecHandler {
	return &SecHandler{accounts: accounts}
}

// HandleBearerAuth authenticates an Authorization header value and returns a
// context carrying the user.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, header string) (context.Context, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "Authentication credentials were not provided.")
	}

	user, err := s.accounts.Authenticate(ctx, strings.TrimSpace(token))
	if err != nil {
		return ctx, err
	}

	return context.WithValue(ctx, UserKey, user), nil
}

// UserFromContext returns the authenticated user, or nil.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(UserKey).(*domain.User)

	return user
}
