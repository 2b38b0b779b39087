package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")

		content := `
log:
  timestamps: false
generate:
  skipInstall: true
  openXcode: false
  bootstrapCommand: ["carthage", "bootstrap"]
  openCommand: xed
answers:
  store: /custom/answers.yaml
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
		assert.True(t, cfg.Generate.SkipInstall)
		require.NotNil(t, cfg.Generate.OpenXcode)
		assert.False(t, *cfg.Generate.OpenXcode)
		assert.Equal(t, []string{"carthage", "bootstrap"}, cfg.Generate.BootstrapCommand)
		assert.Equal(t, "xed", cfg.Generate.OpenCommand)
		assert.Equal(t, "/custom/answers.yaml", cfg.Answers.Store)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Nil(t, cfg.Generate.OpenXcode)
		assert.Empty(t, cfg.Generate.BootstrapCommand)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("answers:\n  store: /file/answers.yaml\n"), 0o644))
		t.Setenv("SWIFTFW_ANSWERS_STORE", "/env/answers.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/env/answers.yaml", cfg.Answers.Store)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("generate: [unclosed"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})
}

func TestLoadWithDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := NewLoader().LoadWithDefaults(configFile)
	require.NoError(t, err)

	require.NotNil(t, cfg.Generate.OpenXcode)
	assert.True(t, *cfg.Generate.OpenXcode)
	assert.Equal(t, DefaultBootstrapCommand, cfg.Generate.BootstrapCommand)
	assert.Equal(t, DefaultOpenCommand, cfg.Generate.OpenCommand)
	assert.Equal(t, DefaultPaths().AnswersFile, cfg.Answers.Store)
}

func TestConfigFileExists(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0o644))

	exists, err := ConfigFileExists(existing)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ConfigFileExists(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, exists)
}
