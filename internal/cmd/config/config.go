// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/swiftfw/cli/internal/cmdtypes"
	"github.com/swiftfw/cli/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the swiftfw CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// configPath returns the config file the command operates on: the path
// resolved by the root command, else --config / SWIFTFW_CONFIG / default.
func configPath(cfg *cmdtypes.GlobalConfig) string {
	if cfg != nil && cfg.ConfigPath != "" {
		return cfg.ConfigPath
	}
	return config.ResolvePath(config.ResolveConfigPath("").ConfigPath)
}
