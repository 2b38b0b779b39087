package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swiftfw/cli/internal/cmdtypes"
	"github.com/swiftfw/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show swiftfw version information.

Displays:
  - swiftfw version, commit, and build date
  - CUE SDK version (embedded in CLI)
  - versions of the external tools used after generation (make, carthage,
    xcodebuild, pod)`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.GetInfo()
	tools := version.DetectTools(cmd.Context())

	fmt.Fprintln(cmd.OutOrStdout(), version.FullVersionString(info, tools))
	return nil
}
