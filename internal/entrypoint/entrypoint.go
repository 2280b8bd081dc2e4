// Package entrypoint sequences container startup: it fixes the data
// directory permissions, waits for the dependencies, migrates the database
// (web only) and finally replaces itself with the long running command.
package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"plasmodocking/internal/config"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/serrors"
)

// Role selects what the container runs.
type Role string

const (
	// RoleWeb migrates the database and serves the HTTP API.
	RoleWeb Role = "web"
	// RoleWorker consumes the job queue.
	RoleWorker Role = "worker"
)

// ParseRole validates a role name.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleWeb, RoleWorker:
		return r, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unknown role %q, expected web or worker", s)
	}
}

// Command returns the subcommand the role execs into.
func (r Role) Command() string {
	if r == RoleWorker {
		return "worker"
	}

	return "serve"
}

// Options configure a startup sequence.
type Options struct {
	Role Role
	// Dirs are created and handed to the owner before anything else.
	Dirs     []string
	Owner    Owner
	HasOwner bool
	// Targets are host:port pairs probed in order.
	Targets       []string
	ProbeInterval time.Duration
	WaitTimeout   time.Duration
	// Executable and Args are passed to Exec; Args excludes the subcommand.
	Executable string
	Args       []string
}

// NewOptions builds the startup options of role from the configuration.
// configPath is forwarded to the final command.
func NewOptions(ctx context.Context, cfg *config.Config, role Role, configPath string) (Options, error) {
	exe, err := os.Executable()
	if err != nil {
		return Options{}, fmt.Errorf("could not resolve executable: %w", err)
	}

	owner, hasOwner := ParseOwner(ctx, cfg.Entrypoint.UID, cfg.Entrypoint.GID)
	targets := []string{cfg.Database.Addr()}
	if addr := cfg.Entrypoint.BrokerAddr(); addr != "" && role == RoleWorker {
		targets = append(targets, addr)
	}

	return Options{
		Role:          role,
		Dirs:          []string{cfg.Files.MoleculesDir, cfg.Files.ProcessesRoot()},
		Owner:         owner,
		HasOwner:      hasOwner,
		Targets:       targets,
		ProbeInterval: cfg.Entrypoint.ProbeInterval,
		WaitTimeout:   cfg.Entrypoint.WaitTimeout,
		Executable:    exe,
		Args:          []string{"-c", configPath},
	}, nil
}

// Runner performs the startup steps. Every field is required.
type Runner struct {
	Dialer Dialer
	// Migrate runs once for the web role.
	Migrate func(ctx context.Context) error
	// Exec replaces the current process; it only returns on failure.
	Exec func(argv0 string, argv []string, envv []string) error
}

// NewRunner returns a Runner that dials with net.Dialer and execs with unix.Exec.
func NewRunner(migrate func(ctx context.Context) error) *Runner {
	return &Runner{
		Migrate: migrate,
		Exec:    unix.Exec,
	}
}

// Run executes the startup sequence. It returns only on failure, or when
// Exec is replaced by a function that returns nil.
func (r *Runner) Run(ctx context.Context, options Options) error {
	ctx = logger.WithFields(ctx, zap.String("role", string(options.Role)))

	logger.Info(ctx, "fixing permissions", zap.Strings("dirs", options.Dirs))
	FixPermissions(ctx, options.Dirs, options.Owner, options.HasOwner)

	for _, addr := range options.Targets {
		if err := WaitForTCP(ctx, r.Dialer, addr, options.ProbeInterval, options.WaitTimeout); err != nil {
			return err
		}
	}

	if options.Role == RoleWeb {
		if r.Migrate == nil {
			return errors.New("no migration step configured")
		}
		logger.Info(ctx, "running migrations")
		if err := r.Migrate(ctx); err != nil {
			return fmt.Errorf("could not migrate: %w", err)
		}
	}

	argv := append([]string{options.Executable, options.Role.Command()}, options.Args...)
	logger.Info(ctx, "starting", zap.Strings("argv", argv))
	_ = logger.Get(ctx).Sync()

	if err := r.Exec(options.Executable, argv, os.Environ()); err != nil {
		return fmt.Errorf("could not exec %s: %w", options.Executable, err)
	}

	return nil
}
