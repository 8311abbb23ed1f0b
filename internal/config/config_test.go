package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvStateDir, t.TempDir())
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("api_base_url: https://afisha.example.edu/api\nlog_level: debug\n"), 0o644))

	t.Setenv(EnvStateDir, dir)
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://afisha.example.edu/api", cfg.APIBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("api_base_url: https://file.example.edu/api\n"), 0o644))

	t.Setenv(EnvStateDir, dir)
	t.Setenv(EnvAPIBaseURL, "https://env.example.edu/api")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.edu/api", cfg.APIBaseURL)
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte(":\n  - not valid yaml: ["), 0o644))

	t.Setenv(EnvStateDir, dir)

	_, err := Load()
	require.Error(t, err)
}

func TestConfig_CredentialsPath(t *testing.T) {
	cfg := Config{StateDir: "/tmp/state"}
	assert.Equal(t, filepath.Join("/tmp/state", "credentials.json"), cfg.CredentialsPath())
}
