package v1handler_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockaccounts "plasmodocking/internal/accounts/mock"
	"plasmodocking/internal/api/handler/v1handler"
	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/serrors"
)

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	accts := mockaccounts.NewMockAccounts(ctrl)
	sh := v1handler.NewSecHandler(accts)

	user := &domain.User{ID: domain.UserID(uuid.New()), IsActive: true}
	accts.EXPECT().Authenticate(gomock.Any(), "abc.def.ghi").Return(user, nil)

	ctx, err := sh.HandleBearerAuth(context.Background(), "bearer  abc.def.ghi")
	require.NoError(t, err)
	require.Same(t, user, v1handler.UserFromContext(ctx))
}

func TestHandleBearerAuth_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	sh := v1handler.NewSecHandler(mockaccounts.NewMockAccounts(ctrl))

	for _, header := range []string{"", "Bearer", "Bearer   ", "Basic dXNlcjpwdw==", "Token abc"} {
		_, err := sh.HandleBearerAuth(context.Background(), header)
		require.ErrorIs(t, err, serrors.ErrUnauthorized, header)
	}
}

func TestHandleBearerAuth_RejectedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	accts := mockaccounts.NewMockAccounts(ctrl)
	sh := v1handler.NewSecHandler(accts)

	accts.EXPECT().Authenticate(gomock.Any(), "expired").
		Return(nil, serrors.With(serrors.ErrUnauthorized, "invalid token"))

	ctx, err := sh.HandleBearerAuth(context.Background(), "Bearer expired")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	require.Nil(t, v1handler.UserFromContext(ctx))
}
