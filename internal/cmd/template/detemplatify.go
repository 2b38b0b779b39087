package template

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/swiftfw/cli/internal/cmdtypes"
	"github.com/swiftfw/cli/internal/cmdutil"
	"github.com/swiftfw/cli/internal/config"
	"github.com/swiftfw/cli/internal/output"
	"github.com/swiftfw/cli/internal/postinstall"
	"github.com/swiftfw/cli/internal/templates"
)

// NewDetemplatifyCmd creates the template detemplatify command.
func NewDetemplatifyCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newDetemplatifyCmd(cfg, postinstall.ExecRunner{})
}

func newDetemplatifyCmd(cfg *cmdtypes.GlobalConfig, runner postinstall.Runner) *cobra.Command {
	var flags transformFlags
	var open bool

	c := &cobra.Command{
		Use:   "detemplatify [dir]",
		Short: "Turn template tokens into stand-ins Xcode can open",
		Long: `Rewrite the tokens of a template tree into plain stand-ins so the tree
can be opened, built and edited in Xcode. {{ .BundleID }} becomes
ORGANIZATION-ID.PROJECT-NAME, {{ .ProjectName }} becomes PROJECT_NAME, and so on.

dir defaults to the current directory. Run 'swiftfw template templatify' to
restore the tokens.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dir := config.ResolvePath(cmdutil.ResolveDir(args))
			opts := flags.options()

			result, err := templates.Detemplatify(afero.NewOsFs(), dir, opts)
			if err != nil {
				return cmdutil.PrintError("detemplatify failed", err)
			}
			reportTransform(c, "detemplatified", result, opts.DryRun)

			if !open || opts.DryRun {
				return nil
			}

			project := templates.PathToken + ".xcodeproj"
			opener := cfg.ConfigOrDefault().Generate.OpenCommand
			if opener == "" {
				opener = config.DefaultOpenCommand
			}
			if err := runner.Run(c.Context(), dir, opener, project); err != nil {
				output.Warn("could not open project", "path", filepath.Join(dir, project), "error", err)
				return nil
			}
			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Opened "+filepath.Join(dir, project)))
			return nil
		},
	}

	flags.addTo(c)
	c.Flags().BoolVar(&open, "open", false, "Open the Xcode project after detemplatifying")
	return c
}
