package entrypoint_test

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"plasmodocking/internal/entrypoint"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func listen(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()

	return l.Addr().String()
}

// flakyDialer refuses the first failures connections.
type flakyDialer struct {
	failures int32
	calls    atomic.Int32
}

func (d *flakyDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	if d.calls.Add(1) <= d.failures {
		return nil, errors.New("connection refused")
	}

	var nd net.Dialer

	return nd.DialContext(ctx, network, address)
}

func TestParseRole(t *testing.T) {
	r, err := entrypoint.ParseRole("web")
	require.NoError(t, err)
	require.Equal(t, "serve", r.Command())

	r, err = entrypoint.ParseRole("worker")
	require.NoError(t, err)
	require.Equal(t, "worker", r.Command())

	_, err = entrypoint.ParseRole("beat")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestParseOwner(t *testing.T) {
	ctx := context.Background()

	o, ok := entrypoint.ParseOwner(ctx, "1000", "1001")
	require.True(t, ok)
	require.Equal(t, entrypoint.Owner{UID: 1000, GID: 1001}, o)

	o, ok = entrypoint.ParseOwner(ctx, "", "50")
	require.True(t, ok)
	require.Equal(t, entrypoint.Owner{UID: -1, GID: 50}, o)

	_, ok = entrypoint.ParseOwner(ctx, "", "")
	require.False(t, ok)

	_, ok = entrypoint.ParseOwner(ctx, "app", "-3")
	require.False(t, ok)
}

func TestFixPermissions(t *testing.T) {
	root := t.TempDir()
	dirs := []string{filepath.Join(root, "macromoleculas"), filepath.Join(root, "processes", "nested"), ""}

	entrypoint.FixPermissions(context.Background(), dirs, entrypoint.Owner{UID: os.Getuid(), GID: os.Getgid()}, true)

	for _, dir := range dirs[:2] {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		require.True(t, info.IsDir())
		require.Equal(t, os.FileMode(0o775), info.Mode().Perm())
	}

	// a file in the way is logged, not fatal
	blocked := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(blocked, nil, 0o600))
	entrypoint.FixPermissions(context.Background(), []string{filepath.Join(blocked, "sub")}, entrypoint.Owner{}, false)
}

func TestWaitForTCP(t *testing.T) {
	addr := listen(t)

	t.Run("retries until up", func(t *testing.T) {
		d := &flakyDialer{failures: 3}
		require.NoError(t, entrypoint.WaitForTCP(context.Background(), d, addr, 10*time.Millisecond, 0))
		require.Equal(t, int32(4), d.calls.Load())
	})

	t.Run("default dialer", func(t *testing.T) {
		require.NoError(t, entrypoint.WaitForTCP(context.Background(), nil, addr, 10*time.Millisecond, time.Second))
	})

	t.Run("default dialer and interval", func(t *testing.T) {
		require.NoError(t, entrypoint.WaitForTCP(context.Background(), nil, addr, 0, time.Second))
	})

	t.Run("timeout", func(t *testing.T) {
		d := &flakyDialer{failures: 1 << 30}
		err := entrypoint.WaitForTCP(context.Background(), d, addr, 10*time.Millisecond, 50*time.Millisecond)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		d := &flakyDialer{failures: 1 << 30}
		err := entrypoint.WaitForTCP(ctx, d, addr, 10*time.Millisecond, 0)
		require.ErrorIs(t, err, context.Canceled)
	})
}

type recorder struct {
	steps []string
	argv  []string
}

func (r *recorder) runner(migrateErr error) *entrypoint.Runner {
	return &entrypoint.Runner{
		Dialer: &flakyDialer{failures: 1},
		Migrate: func(context.Context) error {
			r.steps = append(r.steps, "migrate")

			return migrateErr
		},
		Exec: func(argv0 string, argv []string, _ []string) error {
			r.steps = append(r.steps, "exec")
			r.argv = argv

			return nil
		},
	}
}

func options(t *testing.T, role entrypoint.Role, targets ...string) entrypoint.Options {
	t.Helper()

	return entrypoint.Options{
		Role:          role,
		Dirs:          []string{filepath.Join(t.TempDir(), "macromoleculas")},
		Targets:       targets,
		ProbeInterval: 5 * time.Millisecond,
		Executable:    "/usr/local/bin/plasmodocking",
		Args:          []string{"-c", "/etc/plasmodocking/config.yml"},
	}
}

func TestRunner_Run(t *testing.T) {
	addr := listen(t)

	t.Run("web migrates then serves", func(t *testing.T) {
		rec := &recorder{}
		opts := options(t, entrypoint.RoleWeb, addr)

		require.NoError(t, rec.runner(nil).Run(context.Background(), opts))
		require.Equal(t, []string{"migrate", "exec"}, rec.steps)
		require.Equal(t,
			[]string{"/usr/local/bin/plasmodocking", "serve", "-c", "/etc/plasmodocking/config.yml"}, rec.argv)
		require.DirExists(t, opts.Dirs[0])
	})

	t.Run("worker skips migrations", func(t *testing.T) {
		rec := &recorder{}

		require.NoError(t, rec.runner(nil).Run(context.Background(), options(t, entrypoint.RoleWorker, addr, addr)))
		require.Equal(t, []string{"exec"}, rec.steps)
		require.Equal(t, "worker", rec.argv[1])
	})

	t.Run("migration failure aborts", func(t *testing.T) {
		rec := &recorder{}

		err := rec.runner(errors.New("relation exists")).Run(context.Background(), options(t, entrypoint.RoleWeb, addr))
		require.ErrorContains(t, err, "could not migrate: relation exists")
		require.Equal(t, []string{"migrate"}, rec.steps)
	})

	t.Run("wait timeout aborts", func(t *testing.T) {
		rec := &recorder{}
		r := rec.runner(nil)
		r.Dialer = &flakyDialer{failures: 1 << 30}
		opts := options(t, entrypoint.RoleWeb, addr)
		opts.WaitTimeout = 30 * time.Millisecond

		require.ErrorIs(t, r.Run(context.Background(), opts), context.DeadlineExceeded)
		require.Empty(t, rec.steps)
	})
}
