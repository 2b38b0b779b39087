package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestResolveGenerate_Defaults(t *testing.T) {
	t.Setenv("SWIFTFW_SKIP_INSTALL", "")
	t.Setenv("SWIFTFW_OPEN_XCODE", "")

	result := ResolveGenerate(ResolveGenerateOptions{})

	assert.False(t, result.SkipInstall.Value)
	assert.Equal(t, SourceDefault, result.SkipInstall.Source)
	assert.True(t, result.OpenXcode.Value)
	assert.Equal(t, SourceDefault, result.OpenXcode.Source)
	assert.Equal(t, DefaultBootstrapCommand, result.BootstrapCommand)
	assert.Equal(t, DefaultOpenCommand, result.OpenCommand)
}

func TestResolveGenerate_FlagPrecedence(t *testing.T) {
	t.Setenv("SWIFTFW_SKIP_INSTALL", "false")
	t.Setenv("SWIFTFW_OPEN_XCODE", "true")

	result := ResolveGenerate(ResolveGenerateOptions{
		SkipInstallFlag: boolPtr(true),
		OpenXcodeFlag:   boolPtr(false),
		Config:          &Config{Generate: GenerateConfig{OpenXcode: boolPtr(true)}},
	})

	assert.True(t, result.SkipInstall.Value)
	assert.Equal(t, SourceFlag, result.SkipInstall.Source)
	assert.False(t, result.OpenXcode.Value)
	assert.Equal(t, SourceFlag, result.OpenXcode.Source)
}

func TestResolveGenerate_EnvPrecedence(t *testing.T) {
	t.Setenv("SWIFTFW_SKIP_INSTALL", "1")
	t.Setenv("SWIFTFW_OPEN_XCODE", "")

	result := ResolveGenerate(ResolveGenerateOptions{
		Config: &Config{Generate: GenerateConfig{OpenXcode: boolPtr(false)}},
	})

	assert.True(t, result.SkipInstall.Value)
	assert.Equal(t, SourceEnv, result.SkipInstall.Source)
	assert.False(t, result.OpenXcode.Value)
	assert.Equal(t, SourceConfig, result.OpenXcode.Source)
}

func TestResolveGenerate_InvalidEnvFallsThrough(t *testing.T) {
	t.Setenv("SWIFTFW_SKIP_INSTALL", "maybe")
	t.Setenv("SWIFTFW_OPEN_XCODE", "")

	result := ResolveGenerate(ResolveGenerateOptions{
		Config: &Config{Generate: GenerateConfig{SkipInstall: true}},
	})

	assert.True(t, result.SkipInstall.Value)
	assert.Equal(t, SourceConfig, result.SkipInstall.Source)
}

func TestResolveGenerate_ConfigCommands(t *testing.T) {
	result := ResolveGenerate(ResolveGenerateOptions{
		Config: &Config{Generate: GenerateConfig{
			BootstrapCommand: []string{"carthage", "bootstrap"},
			OpenCommand:      "xed",
		}},
	})

	assert.Equal(t, []string{"carthage", "bootstrap"}, result.BootstrapCommand)
	assert.Equal(t, "xed", result.OpenCommand)
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		t.Setenv("SWIFTFW_CONFIG", "/env/config.yaml")
		result := ResolveConfigPath("/flag/config.yaml")
		assert.Equal(t, "/flag/config.yaml", result.ConfigPath)
		assert.Equal(t, SourceFlag, result.Source)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("SWIFTFW_CONFIG", "/env/config.yaml")
		result := ResolveConfigPath("")
		assert.Equal(t, "/env/config.yaml", result.ConfigPath)
		assert.Equal(t, SourceEnv, result.Source)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv("SWIFTFW_CONFIG", "")
		result := ResolveConfigPath("")
		assert.Equal(t, DefaultPaths().ConfigFile, result.ConfigPath)
		assert.Equal(t, SourceDefault, result.Source)
	})
}
