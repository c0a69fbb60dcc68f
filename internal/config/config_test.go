package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "a", defaults.Add)
	assert.Equal(t, "enter", defaults.Open)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LISTA_BACKEND", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("LISTA_BACKEND", "")

	configDir := filepath.Join(tempDir, "lista")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	configContent := `storage:
  backend: redis
  redis_addr: "cache:6379"
  redis_namespace: "lista:"
key_mappings:
  quit: "x"
  add: "n"
theme:
  preset: wave
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "n", cfg.KeyMappings.Add)
	// Unspecified values should use defaults
	assert.Equal(t, "d", cfg.KeyMappings.Delete)

	opts := cfg.Storage.StoreOptions()
	assert.Equal(t, "redis", opts.Backend)
	assert.Equal(t, "cache:6379", opts.RedisAddr)
	assert.Equal(t, "lista:", opts.RedisNamespace)

	assert.Equal(t, "#957FB8", cfg.ColorScheme.Accent, "wave preset fills missing colors")
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [unclosed"), 0o644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestBackendEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: file\n"), 0o644))
	t.Setenv("LISTA_BACKEND", "memory")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Backend)

	missing, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "memory", missing.Storage.Backend)
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("LISTA_BACKEND", "")

	cfg := &Config{
		Storage: StorageConfig{Backend: "file", Path: "/tmp/lists.json"},
		KeyMappings: KeyMappings{
			Quit: "x",
			Add:  "n",
		},
	}
	cfg.applyDefaults()

	require.NoError(t, cfg.Save())

	configPath := filepath.Join(tempDir, "lista", "config.yaml")
	_, err := os.Stat(configPath)
	require.NoError(t, err, "config file not created at %s", configPath)

	cfg2, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "x", cfg2.KeyMappings.Quit)
	assert.Equal(t, "n", cfg2.KeyMappings.Add)
	assert.Equal(t, "file", cfg2.Storage.Backend)
	assert.Equal(t, "/tmp/lists.json", cfg2.Storage.Path)
}
