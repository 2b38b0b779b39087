// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/template, internal/cmd/config).
package cmdtypes

import (
	"github.com/swiftfw/cli/internal/config"
	oerrors "github.com/swiftfw/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded configuration with defaults applied.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// ConfigSource records where ConfigPath came from.
	ConfigSource config.ConfigSource

	Verbose bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitPermissionDenied = oerrors.ExitPermissionDenied
	ExitNotFound         = oerrors.ExitNotFound
	ExitAborted          = oerrors.ExitAborted
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// ConfigOrDefault returns the loaded config, or the defaults when the root
// command has not run (sub-commands executed directly in tests).
func (g *GlobalConfig) ConfigOrDefault() *config.Config {
	if g == nil || g.Config == nil {
		return config.DefaultConfig()
	}
	return g.Config
}
