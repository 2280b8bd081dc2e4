package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"plasmodocking/internal/accounts"
	"plasmodocking/internal/api/handler/v1handler"
	"plasmodocking/internal/config"
	"plasmodocking/internal/molecules"
	"plasmodocking/internal/processes"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/mailer"
	"plasmodocking/pkg/mailer/resend"
	"plasmodocking/pkg/storage"
)

// newMailer returns the Resend client, or the console mailer when no API key
// is configured or the console fallback is enabled.
func newMailer(ctx context.Context, cfg *config.Config) mailer.Mailer {
	if cfg.Mail.FallbackToConsole || cfg.Mail.ResendAPIKey == "" {
		logger.Info(ctx, "emails are written to the log")

		return mailer.Console{}
	}

	return resend.New(&http.Client{Timeout: cfg.Mail.Timeout}, cfg.Mail.ResendBaseURL, cfg.Mail.ResendAPIKey)
}

func newAccounts(ctx context.Context, cfg *config.Config, strg storage.Storage) accounts.Accounts {
	j, err := accounts.NewJWT(cfg.JWT.PrivateKey, cfg.JWT.PublicKey, cfg.JWT.TTL)
	if err != nil {
		logger.Fatal(ctx, "could not load JWT keys", zap.Error(err))
	}

	return accounts.New(strg, j, accounts.NewResetTokens(cfg.SecretKey), newMailer(ctx, cfg), accounts.Options{
		MailFrom:         cfg.Mail.From,
		PasswordResetURL: cfg.Mail.PasswordResetURL,
	})
}

// newDeps builds the services behind the HTTP API.
func newDeps(ctx context.Context, cfg *config.Config, strg storage.Storage) v1handler.Deps {
	return v1handler.Deps{
		Accounts:  newAccounts(ctx, cfg, strg),
		Molecules: molecules.New(strg, molecules.NewOptions(cfg)),
		Processes: processes.New(strg, processes.NewOptions(cfg)),
	}
}
