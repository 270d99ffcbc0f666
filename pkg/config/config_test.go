package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONTACTBOOK_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.BindAddress)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, BackendDatabase, cfg.ContactBackend)
	assert.Equal(t, "default", cfg.Source("port"))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONTACTBOOK_CONFIG_PATH", dir)

	contents := "port: 9000\ncontact_backend: api\ncontact_api_base_url: http://contacts.internal\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(contents), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, BackendAPI, cfg.ContactBackend)
	assert.Equal(t, "http://contacts.internal", cfg.ContactAPIBaseURL)
	assert.Equal(t, "file", cfg.Source("port"))
	assert.Equal(t, "default", cfg.Source("bind_address"))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONTACTBOOK_CONFIG_PATH", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("port: 9000\n"), 0o600))

	t.Setenv("PORT", "9100")
	t.Setenv("CONTACTBOOK_SESSION_KEY", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "environment", cfg.Source("port"))
	assert.Equal(t, "s3cret", cfg.SessionKey)
}

func TestValidate(t *testing.T) {
	cfg := newDefault()
	assert.Error(t, cfg.Validate(), "missing session key must be rejected")

	cfg.SessionKey = "k"
	assert.NoError(t, cfg.Validate())

	cfg.ContactBackend = "redis"
	assert.Error(t, cfg.Validate())

	cfg.ContactBackend = BackendAPI
	cfg.ContactAPIBaseURL = ""
	assert.Error(t, cfg.Validate())
}
