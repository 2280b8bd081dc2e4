package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"plasmodocking/internal/accounts"
	"plasmodocking/internal/config"
	"plasmodocking/pkg/logger"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed RS256 JWT
// for a user, identified by ID or by email, using the configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates a JWT access token for a user",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			email, _ := cmd.Flags().GetString("email")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			if subject == "" {
				strg, closeStrg := getPostgres(ctx, cfg)
				user, err := strg.UserByEmail(ctx, email)
				closeStrg()
				if err != nil {
					logger.Fatal(ctx, "could not find user", zap.String("email", email), zap.Error(err))
				}
				if user == nil {
					logger.Fatal(ctx, "user not found", zap.String("email", email))
				}
				subject = user.ID.String()
			}

			j, err := accounts.NewJWT(cfg.JWT.PrivateKey, cfg.JWT.PublicKey, TTL)
			if err != nil {
				logger.Fatal(ctx, "could not load JWT keys", zap.Error(err))
			}
			signed, err := j.Issue(subject, time.Now())
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().String("email", "", "Email of the user; used when --subject is empty")
	cmd.Flags().Duration("ttl", 90*24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	cmd.MarkFlagsOneRequired("subject", "email")
	cmd.MarkFlagsMutuallyExclusive("subject", "email")

	return cmd
}
