package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.ListenAddr)
	assert.Equal(t, "signals.db", cfg.DatabasePath)
	assert.Equal(t, "data.csv", cfg.DataFile)
	assert.Equal(t, 100, cfg.ImportBatchSize)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "http://127.0.0.1:5000", cfg.APIURL())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signal-dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen_addr: "localhost:8090"
database_path: /tmp/signals.db
import_batch_size: 25
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/signals.db", cfg.DatabasePath)
	assert.Equal(t, 25, cfg.ImportBatchSize)
	assert.Equal(t, "http://localhost:8090", cfg.APIURL())
}

func TestLoad_TOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signal-dashboard.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_file = "exports/signals.csv"
api_base_url = "http://api.internal:9000/"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "exports/signals.csv", cfg.DataFile)
	assert.Equal(t, "http://api.internal:9000", cfg.APIURL())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signal-dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: \":7000\"\n"), 0o600))

	t.Setenv("SIGNAL_DASHBOARD_LISTEN_ADDR", ":9100")
	t.Setenv("SIGNAL_DASHBOARD_IMPORT_BATCH_SIZE", "10")
	t.Setenv("GIN_MODE", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.ListenAddr)
	assert.Equal(t, 10, cfg.ImportBatchSize)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "http://127.0.0.1:9100", cfg.APIURL())
}

func TestLoad_InvalidBatchSize(t *testing.T) {
	t.Setenv("SIGNAL_DASHBOARD_IMPORT_BATCH_SIZE", "lots")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: [unterminated"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
