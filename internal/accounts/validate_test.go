package accounts_test

import (
	"testing"

	"plasmodocking/internal/accounts"
	"plasmodocking/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	user := &domain.User{
		Username:  "marianasilva",
		Email:     "mariana.silva@example.com",
		FirstName: "Mariana",
		LastName:  "Silva",
	}

	tests := []struct {
		name     string
		password string
		user     *domain.User
		want     []string
	}{
		{name: "strong", password: "t4nk-Orbit-91", user: user},
		{
			name:     "too short",
			password: "x9$k",
			want:     []string{"This password is too short. It must contain at least 8 characters."},
		},
		{
			name:     "common and numeric",
			password: "12345678",
			want:     []string{"This password is too common.", "This password is entirely numeric."},
		},
		{name: "common ignores case", password: "PassWord123", want: []string{"This password is too common."}},
		{
			name:     "similar to username",
			password: "marianasilva1",
			user:     user,
			want:     []string{"The password is too similar to the username."},
		},
		{
			name:     "similar to an email part",
			password: "Example.com!",
			user:     &domain.User{Username: "zq", Email: "someone@example.com"},
			want:     []string{"The password is too similar to the email address."},
		},
		{name: "no user skips similarity", password: "marianasilva1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, accounts.ValidatePassword(tt.password, tt.user))
		})
	}
}
