package config

import (
	"os"
	"strconv"

	"github.com/swiftfw/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedBool is a boolean setting with its source.
type ResolvedBool struct {
	Value  bool
	Source ConfigSource
}

// ResolveGenerateOptions contains the raw inputs for resolving generate settings.
type ResolveGenerateOptions struct {
	// SkipInstallFlag is the --skip-install value; nil when the flag was not set.
	SkipInstallFlag *bool

	// OpenXcodeFlag is the inverse of --no-open; nil when the flag was not set.
	OpenXcodeFlag *bool

	// Config is the loaded configuration (may be nil).
	Config *Config
}

// ResolvedGenerate holds the resolved settings for `swiftfw new`.
type ResolvedGenerate struct {
	SkipInstall      ResolvedBool
	OpenXcode        ResolvedBool
	BootstrapCommand []string
	OpenCommand      string
}

// ResolveGenerate resolves generate settings using precedence:
// (1) flag, (2) SWIFTFW_* env, (3) config file, (4) default.
func ResolveGenerate(opts ResolveGenerateOptions) ResolvedGenerate {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}
	cfg = cfg.WithDefaults()

	var configSkip *bool
	if opts.Config != nil && opts.Config.Generate.SkipInstall {
		configSkip = &opts.Config.Generate.SkipInstall
	}
	var configOpen *bool
	if opts.Config != nil {
		configOpen = opts.Config.Generate.OpenXcode
	}

	result := ResolvedGenerate{
		SkipInstall:      resolveBool(opts.SkipInstallFlag, "SWIFTFW_SKIP_INSTALL", configSkip, false),
		OpenXcode:        resolveBool(opts.OpenXcodeFlag, "SWIFTFW_OPEN_XCODE", configOpen, true),
		BootstrapCommand: cfg.Generate.BootstrapCommand,
		OpenCommand:      cfg.Generate.OpenCommand,
	}

	output.Debug("resolved generate settings",
		"skipInstall", result.SkipInstall.Value,
		"skipInstallSource", result.SkipInstall.Source,
		"openXcode", result.OpenXcode.Value,
		"openXcodeSource", result.OpenXcode.Source,
	)

	return result
}

func resolveBool(flag *bool, envKey string, configValue *bool, def bool) ResolvedBool {
	if flag != nil {
		return ResolvedBool{Value: *flag, Source: SourceFlag}
	}
	if raw := os.Getenv(envKey); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			return ResolvedBool{Value: v, Source: SourceEnv}
		}
		output.Warn("ignoring invalid boolean environment variable", "name", envKey, "value", raw)
	}
	if configValue != nil {
		return ResolvedBool{Value: *configValue, Source: SourceConfig}
	}
	return ResolvedBool{Value: def, Source: SourceDefault}
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SWIFTFW_CONFIG env, (3) default path.
func ResolveConfigPath(flagValue string) ResolveConfigPathResult {
	if flagValue != "" {
		return ResolveConfigPathResult{ConfigPath: flagValue, Source: SourceFlag}
	}
	if env := os.Getenv("SWIFTFW_CONFIG"); env != "" {
		return ResolveConfigPathResult{ConfigPath: env, Source: SourceEnv}
	}
	return ResolveConfigPathResult{ConfigPath: DefaultPaths().ConfigFile, Source: SourceDefault}
}
