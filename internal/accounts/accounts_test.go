package accounts_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"plasmodocking/internal/accounts"
	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/mailer"
	mockmailer "plasmodocking/pkg/mailer/mock"
	"plasmodocking/pkg/serrors"
	"plasmodocking/pkg/storage"
	mockstorage "plasmodocking/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

var testNow = time.Now().UTC().Truncate(time.Second) //nolint: gochecknoglobals

type fixture struct {
	st     *mockstorage.MockStorage
	mail   *mockmailer.MockMailer
	jwt    *accounts.JWT
	tokens *accounts.ResetTokens
	svc    accounts.Accounts
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	_, privPEM, _ := genRSAKeys(t)
	j, err := accounts.NewJWT(privPEM, "", 90*24*time.Hour)
	require.NoError(t, err)

	f := &fixture{
		st:     mockstorage.NewMockStorage(ctrl),
		mail:   mockmailer.NewMockMailer(ctrl),
		jwt:    j,
		tokens: accounts.NewResetTokens("secret"),
	}
	f.svc = accounts.New(f.st, f.jwt, f.tokens, f.mail, accounts.Options{
		MailFrom:         "PlasmoDocking <noreply@plasmodocking.dev>",
		PasswordResetURL: "https://app.plasmodocking.dev/reset",
		Now:              func() time.Time { return testNow },
	})

	return f
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := accounts.HashPassword(password)
	require.NoError(t, err)

	return &domain.User{
		ID:           domain.UserID(uuid.New()),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		IsActive:     true,
		Role:         domain.RoleUser,
	}
}

func TestAccounts_Register(t *testing.T) {
	t.Run("normalises and hashes", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u domain.User) (*domain.User, error) {
				require.Equal(t, "alice", u.Username)
				require.Equal(t, "alice@example.com", u.Email)
				require.Equal(t, domain.RoleUser, u.Role)
				require.True(t, u.IsActive)
				require.False(t, u.Deleted)
				ok, err := accounts.CheckPassword("t4nk-Orbit-91", u.PasswordHash)
				require.NoError(t, err)
				require.True(t, ok)
				u.ID = domain.UserID(uuid.New())

				return &u, nil
			})

		u, err := f.svc.Register(context.Background(), accounts.RegisterInput{
			Username: "  alice ",
			Email:    " Alice@Example.COM",
			Password: "t4nk-Orbit-91",
		})
		require.NoError(t, err)
		require.NotEqual(t, domain.UserID{}, u.ID)
	})

	t.Run("no password is unusable", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u domain.User) (*domain.User, error) {
				require.False(t, accounts.IsUsablePassword(u.PasswordHash))

				return &u, nil
			})

		_, err := f.svc.Register(context.Background(), accounts.RegisterInput{Username: "bob", Email: "bob@example.com"})
		require.NoError(t, err)
	})

	t.Run("weak password", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Register(context.Background(), accounts.RegisterInput{
			Username: "bob",
			Email:    "bob@example.com",
			Password: "123",
		})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.Contains(t, err.Error(), "too short")
		require.Contains(t, err.Error(), "entirely numeric")
	})

	t.Run("invalid role", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Register(context.Background(), accounts.RegisterInput{
			Username: "bob",
			Email:    "bob@example.com",
			Role:     "ROOT",
		})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("conflict is propagated", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(nil, serrors.With(serrors.ErrConflict, "a user with that username already exists"))

		_, err := f.svc.Register(context.Background(), accounts.RegisterInput{Username: "bob", Email: "bob@example.com"})
		require.ErrorIs(t, err, serrors.ErrConflict)
	})
}

func TestAccounts_Login(t *testing.T) {
	user := activeUser(t, "t4nk-Orbit-91")

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().UserByEmail(gomock.Any(), "alice@example.com").Return(user, nil)

		res, err := f.svc.Login(context.Background(), "ALICE@example.com ", "t4nk-Orbit-91")
		require.NoError(t, err)
		require.Equal(t, "Bearer", res.TokenType)

		sub, err := f.jwt.Verify(res.AccessToken)
		require.NoError(t, err)
		require.Equal(t, user.ID.String(), sub)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := f.svc.Login(context.Background(), "x@example.com", "whatever1")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
		require.Equal(t, "Invalid credentials", err.Error())
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)

		_, err := f.svc.Login(context.Background(), "alice@example.com", "nope")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
		require.Equal(t, "Invalid credentials", err.Error())
	})

	t.Run("deleted user", func(t *testing.T) {
		f := newFixture(t)
		deleted := *user
		deleted.Deleted = true
		f.st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(&deleted, nil)

		_, err := f.svc.Login(context.Background(), "alice@example.com", "t4nk-Orbit-91")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
		require.Equal(t, "User is inactive or deleted", err.Error())
	})
}

func TestAccounts_Authenticate(t *testing.T) {
	user := activeUser(t, "t4nk-Orbit-91")

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		token, err := f.jwt.Issue(user.ID.String(), time.Now())
		require.NoError(t, err)
		f.st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)

		got, err := f.svc.Authenticate(context.Background(), token)
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)
	})

	t.Run("non uuid subject", func(t *testing.T) {
		f := newFixture(t)
		token, err := f.jwt.Issue("not-a-uuid", time.Now())
		require.NoError(t, err)

		_, err = f.svc.Authenticate(context.Background(), token)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("missing user", func(t *testing.T) {
		f := newFixture(t)
		token, err := f.jwt.Issue(user.ID.String(), time.Now())
		require.NoError(t, err)
		f.st.EXPECT().UserByID(gomock.Any(), user.ID).Return(nil, nil)

		_, err = f.svc.Authenticate(context.Background(), token)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("inactive user", func(t *testing.T) {
		f := newFixture(t)
		token, err := f.jwt.Issue(user.ID.String(), time.Now())
		require.NoError(t, err)
		inactive := *user
		inactive.IsActive = false
		f.st.EXPECT().UserByID(gomock.Any(), user.ID).Return(&inactive, nil)

		_, err = f.svc.Authenticate(context.Background(), token)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})
}

func TestAccounts_UpdateAndDelete_RequireStaff(t *testing.T) {
	f := newFixture(t)
	actor := activeUser(t, "t4nk-Orbit-91")
	target := domain.UserID(uuid.New())

	_, err := f.svc.Update(context.Background(), actor, target, accounts.UserPatch{})
	require.ErrorIs(t, err, serrors.ErrForbidden)

	err = f.svc.Delete(context.Background(), nil, target)
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestAccounts_Update(t *testing.T) {
	f := newFixture(t)
	staff := activeUser(t, "t4nk-Orbit-91")
	staff.IsStaff = true
	target := activeUser(t, "t4nk-Orbit-91")

	email := " NEW@Example.com "
	password := "Sunlit-Harbor-77"
	role := domain.RoleAdmin

	f.st.EXPECT().UserByID(gomock.Any(), target.ID).Return(target, nil)
	f.st.EXPECT().UpdateUser(gomock.Any(), target.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, u storage.UserUpdates) (*domain.User, error) {
			require.Equal(t, "new@example.com", *u.Email)
			require.Equal(t, domain.RoleAdmin, *u.Role)
			require.NotNil(t, u.PasswordHash)
			ok, err := accounts.CheckPassword(password, *u.PasswordHash)
			require.NoError(t, err)
			require.True(t, ok)

			updated := *target
			updated.Email = *u.Email

			return &updated, nil
		})

	got, err := f.svc.Update(context.Background(), staff, target.ID, accounts.UserPatch{
		Email:    &email,
		Password: &password,
		Role:     &role,
	})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", got.Email)
}

func TestAccounts_Delete(t *testing.T) {
	f := newFixture(t)
	staff := &domain.User{IsSuperuser: true}
	ID := domain.UserID(uuid.New())

	f.st.EXPECT().DeleteUser(gomock.Any(), ID).Return(true, nil)
	require.NoError(t, f.svc.Delete(context.Background(), staff, ID))

	f.st.EXPECT().DeleteUser(gomock.Any(), ID).Return(false, nil)
	require.ErrorIs(t, f.svc.Delete(context.Background(), staff, ID), serrors.ErrNotFound)
}

func TestAccounts_RecoverPassword(t *testing.T) {
	user := activeUser(t, "t4nk-Orbit-91")

	t.Run("sends token", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().UserByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		f.mail.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg mailer.Message) (mailer.SendRes, error) {
				token := f.tokens.Make(user, testNow)
				require.Equal(t, []string{"alice@example.com"}, msg.To)
				require.Equal(t, "Recuperação de senha", msg.Subject)
				require.Contains(t, msg.HTML, token)
				require.Contains(t, msg.HTML, "https://app.plasmodocking.dev/reset?email=alice%40example.com&amp;token="+token)

				return mailer.SendRes{ID: "1"}, nil
			})

		require.NoError(t, f.svc.RecoverPassword(context.Background(), "Alice@example.com"))
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)

		err := f.svc.RecoverPassword(context.Background(), "x@example.com")
		require.ErrorIs(t, err, serrors.ErrNotFound)
		require.Equal(t, "User not found", err.Error())
	})

	t.Run("provider error", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
		f.mail.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(mailer.SendRes{}, serrors.With(serrors.ErrBadGateway, "domain not verified"))

		err := f.svc.RecoverPassword(context.Background(), "alice@example.com")
		require.ErrorIs(t, err, serrors.ErrBadGateway)
		var se *serrors.Error
		require.ErrorAs(t, err, &se)
		require.Equal(t, "Email service error", se.Message())
	})

	t.Run("transport error", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
		f.mail.EXPECT().Send(gomock.Any(), gomock.Any()).Return(mailer.SendRes{}, errors.New("dial tcp: timeout"))

		err := f.svc.RecoverPassword(context.Background(), "alice@example.com")
		require.ErrorIs(t, err, serrors.ErrBadGateway)
		var se *serrors.Error
		require.ErrorAs(t, err, &se)
		require.Equal(t, "Internal email error", se.Message())
	})
}

func TestAccounts_UpdatePassword(t *testing.T) {
	user := activeUser(t, "t4nk-Orbit-91")

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		token := f.tokens.Make(user, testNow.Add(-time.Hour))
		f.st.EXPECT().UserByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		f.st.EXPECT().UpdateUser(gomock.Any(), user.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.UserID, u storage.UserUpdates) (*domain.User, error) {
				ok, err := accounts.CheckPassword("Sunlit-Harbor-77", *u.PasswordHash)
				require.NoError(t, err)
				require.True(t, ok)

				return user, nil
			})

		require.NoError(t, f.svc.UpdatePassword(context.Background(), "alice@example.com", "Sunlit-Harbor-77", token))
	})

	t.Run("expired token", func(t *testing.T) {
		f := newFixture(t)
		token := f.tokens.Make(user, testNow.Add(-4*24*time.Hour))
		f.st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)

		err := f.svc.UpdatePassword(context.Background(), "alice@example.com", "Sunlit-Harbor-77", token)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.Equal(t, "Invalid or expired token", err.Error())
	})

	t.Run("weak password", func(t *testing.T) {
		f := newFixture(t)
		token := f.tokens.Make(user, testNow)
		f.st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)

		err := f.svc.UpdatePassword(context.Background(), "alice@example.com", "password", token)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.True(t, strings.Contains(err.Error(), "too common"))
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)

		err := f.svc.UpdatePassword(context.Background(), "x@example.com", "Sunlit-Harbor-77", "t")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}
