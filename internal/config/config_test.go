package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"plasmodocking/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "6543")
	t.Setenv("MOLECULES_DIR", "/srv/data/macromoleculas")
	t.Setenv("CELERY_CONCURRENCY", "4")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://plasmodocking.dev")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "db:6543", cfg.Database.Addr())
	require.Equal(t, ":8000", cfg.HTTP.Addr)
	require.Equal(t, 4, cfg.Worker.Concurrency)
	require.Equal(t, "default", cfg.Worker.Queue)
	require.Equal(t, 2160*time.Hour, cfg.JWT.TTL)
	require.Equal(t, "/srv/data/processes", cfg.Files.ProcessesRoot())
	require.Equal(t, []string{"http://localhost:3000", "https://plasmodocking.dev"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 23, cfg.Tools.FldAppendCutoffLine)
	require.Empty(t, cfg.Entrypoint.BrokerAddr())
}

func TestLoad_YAMLAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
files:
  moleculesDir: /data/macromoleculas
  processesDir: /data/runs
entrypoint:
  rabbitmqHost: rabbit
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PLASMODOCKING_TEST_SECRET_FROM_DOTENV=1\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("PLASMODOCKING_TEST_SECRET_FROM_DOTENV") })

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "/data/runs", cfg.Files.ProcessesRoot())
	require.Equal(t, "rabbit:5672", cfg.Entrypoint.BrokerAddr())
	require.Equal(t, time.Second, cfg.Entrypoint.ProbeInterval)
	require.Equal(t, "1", os.Getenv("PLASMODOCKING_TEST_SECRET_FROM_DOTENV"))
}
