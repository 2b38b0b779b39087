package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swiftfw/cli/internal/cmdtypes"
	"github.com/swiftfw/cli/internal/config"
	oerrors "github.com/swiftfw/cli/internal/errors"
	"github.com/swiftfw/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the swiftfw configuration file",
		Long: `Validate the swiftfw configuration file against the internal schema.

The command validates $XDG_CONFIG_HOME/swiftfw/config.yaml by default.
Use --config or SWIFTFW_CONFIG to choose a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, configPath(cfg))
		},
	}
}

func runVet(c *cobra.Command, path string) error {
	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if !exists {
		return oerrors.NewExitError(
			fmt.Errorf("config file not found: %s", path),
			oerrors.ExitNotFound,
		)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateFile(path); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			fmt.Fprintln(c.ErrOrStderr(), "Error: config validation failed")
			fmt.Fprintf(c.ErrOrStderr(), "  File: %s\n\n", path)
			for _, e := range validationErrs {
				fmt.Fprintf(c.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
			}
			return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err, Printed: true}
		}
		return oerrors.NewExitError(fmt.Errorf("validating config: %w", err), oerrors.ExitValidationError)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+path))
	return nil
}
