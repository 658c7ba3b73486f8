package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ReadsYAMLAndAppliesDefaults(t *testing.T) {
	path := writeTempConfig(t, `
server:
  port: 9191
database:
  user: tester
  password: secret
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "tester", cfg.Database.User)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Defaults fill everything the file left out.
	assert.Equal(t, DefaultDBHost, cfg.Database.Host)
	assert.Equal(t, DefaultPubChemBaseURL, cfg.Sources.PubChem.BaseURL)
}

func TestLoad_MissingFileFails(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidConfigFailsValidation(t *testing.T) {
	path := writeTempConfig(t, `
database:
  user: tester
log:
  level: shouting
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestLoadFromEnv_EnvOverridesAndDefaults(t *testing.T) {
	t.Setenv("REPURPOSE_DATABASE_USER", "envuser")
	t.Setenv("REPURPOSE_DATABASE_HOST", "db.example.com")
	t.Setenv("REPURPOSE_SERVER_PORT", "7070")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "envuser", cfg.Database.User)
	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "missing.yaml"))
	})
}
