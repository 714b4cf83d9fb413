package config_test

import (
	"os"
	"path/filepath"
	"tally/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
voting:
  quota: 5
  lockTimeout: 500ms
  trustedProxies:
    - 10.0.0.0/8
    - 192.168.1.5
exporter:
  workers: 2
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, 5, cfg.Voting.Quota)
	require.Equal(t, 500*time.Millisecond, cfg.Voting.LockTimeout)
	require.Equal(t, []string{"10.0.0.0/8", "192.168.1.5"}, cfg.Voting.TrustedProxies)
	require.Equal(t, 2, cfg.Exporter.Workers)

	// defaults
	require.Equal(t, "change-me", cfg.Voting.IdentitySalt)
	require.Equal(t, 3, cfg.Voting.MaxRetries)
	require.Equal(t, 5, cfg.Exporter.MaxAttempts)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
