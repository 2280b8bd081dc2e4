package main

import (
	"context"
	"database/sql"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"plasmodocking/internal/config"
	"plasmodocking/internal/entrypoint"
	"plasmodocking/pkg/logger"
)

// entrypointCommand prepares the container and replaces itself with the
// serve or worker command.
func entrypointCommand(cfg *config.Config, configPath string) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "entrypoint [web|worker]",
		Short:     "Fixes permissions, waits for dependencies, migrates and starts a role",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(entrypoint.RoleWeb), string(entrypoint.RoleWorker)},
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			role, err := entrypoint.ParseRole(args[0])
			if err != nil {
				logger.Fatal(ctx, "invalid role", zap.Error(err))
			}

			options, err := entrypoint.NewOptions(ctx, cfg, role, configPath)
			if err != nil {
				logger.Fatal(ctx, "could not build entrypoint options", zap.Error(err))
			}

			runner := entrypoint.NewRunner(func(ctx context.Context) error {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				return entrypoint.Migrate(ctx, strg.DB.(*sql.DB))
			})
			if err := runner.Run(ctx, options); err != nil {
				logger.Fatal(ctx, "entrypoint failed", zap.Error(err))
			}
		},
	}

	return cmd
}
