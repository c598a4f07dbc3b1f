package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"deedles.dev/listq/internal/config"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "qtest.yaml", `
log:
  level: debug
string_length: "16"
descend: true
metrics_addr: 127.0.0.1:9100
`)

	cfg, used, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 16, cfg.StringLength)
	require.True(t, cfg.Descend)
	require.False(t, cfg.Echo)
	require.Equal(t, "127.0.0.1:9100", cfg.MetricsAddr)
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeFile(t, "qtest.yaml", "echo: true\n")

	cfg, _, err := config.Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Echo)
	require.Equal(t, config.DefaultStringLength, cfg.StringLength)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeFile(t, "qtest.yaml", "colour: blue\n")

	_, _, err := config.Load(path)
	require.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	t.Chdir(t.TempDir())
	cfg, used, err := config.Load("")
	require.NoError(t, err)
	require.Empty(t, used)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadInvalid(t *testing.T) {
	path := writeFile(t, "qtest.yaml", "string_length: -1\n")

	_, _, err := config.Load(path)
	require.Error(t, err)
}

func TestYAML(t *testing.T) {
	cfg := config.Default()
	cfg.Descend = true

	data, err := cfg.YAML()
	require.NoError(t, err)
	require.Contains(t, string(data), "descend: true")
	require.Contains(t, string(data), "string_length: 1024")
	require.Contains(t, string(data), "level: info")
}
