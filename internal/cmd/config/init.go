package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/swiftfw/cli/internal/cmdtypes"
	"github.com/swiftfw/cli/internal/config"
	oerrors "github.com/swiftfw/cli/internal/errors"
	"github.com/swiftfw/cli/internal/output"
)

const configHeader = "# swiftfw CLI configuration\n# Environment variables (SWIFTFW_*) and flags override these values.\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new swiftfw configuration file",
		Long: `Create a new swiftfw configuration file with default values.

The configuration file is created at $XDG_CONFIG_HOME/swiftfw/config.yaml by
default. Use --config or SWIFTFW_CONFIG to choose a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, configPath(cfg), force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, path string, force bool) error {
	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if exists && !force {
		return oerrors.NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", path),
			oerrors.ExitGeneralError,
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		if os.IsPermission(err) {
			return oerrors.NewExitError(
				oerrors.NewPermissionError("cannot write config file",
					map[string]string{"path": path}, "Choose a writable location with --config."),
				oerrors.ExitPermissionDenied)
		}
		return fmt.Errorf("writing config file: %w", err)
	}

	output.Debug("wrote default config", "path", path, "overwrite", exists)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+path))
	return nil
}
