package template

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/swiftfw/cli/internal/cmdtypes"
	"github.com/swiftfw/cli/internal/cmdutil"
	"github.com/swiftfw/cli/internal/config"
	oerrors "github.com/swiftfw/cli/internal/errors"
	"github.com/swiftfw/cli/internal/output"
	"github.com/swiftfw/cli/internal/templates"
)

// transformFlags holds the flags shared by templatify and detemplatify.
type transformFlags struct {
	exclude []string
	dryRun  bool
}

func (f *transformFlags) addTo(c *cobra.Command) {
	c.Flags().StringSliceVar(&f.exclude, "exclude", templates.DefaultExclude,
		"Subtrees left untouched, relative to dir (can be repeated)")
	c.Flags().BoolVar(&f.dryRun, "dry-run", false,
		"Report the files that would change without writing them")
}

func (f *transformFlags) options() templates.TransformOptions {
	return templates.TransformOptions{Exclude: f.exclude, DryRun: f.dryRun}
}

// NewTemplatifyCmd creates the template templatify command.
func NewTemplatifyCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var flags transformFlags
	var check bool

	c := &cobra.Command{
		Use:   "templatify [dir]",
		Short: "Turn stand-ins back into template tokens",
		Long: `Rewrite the stand-ins of a detemplatified tree (PROJECT_NAME,
ORGANIZATION-ID.PROJECT-NAME, ...) into the tokens the generator substitutes.

dir defaults to the current directory. Binary files and the Carthage
directory are left untouched.

With --check nothing is written and the command fails when any file would
change, which keeps un-templatified edits out of commits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dir := config.ResolvePath(cmdutil.ResolveDir(args))
			opts := flags.options()
			if check {
				opts.DryRun = true
			}

			result, err := templates.Templatify(afero.NewOsFs(), dir, opts)
			if err != nil {
				return cmdutil.PrintError("templatify failed", err)
			}

			if check && len(result.Changed) > 0 {
				return cmdutil.PrintError("templates are dirty", oerrors.NewValidationError(
					fmt.Sprintf("%d files contain stand-ins:\n    %s", len(result.Changed), strings.Join(result.Changed, "\n    ")),
					dir, "", "Run 'swiftfw template templatify' before committing."))
			}

			reportTransform(c, "templatified", result, opts.DryRun)
			return nil
		},
	}

	flags.addTo(c)
	c.Flags().BoolVar(&check, "check", false, "Fail if any file is not templatified; writes nothing")
	return c
}

// reportTransform prints the touched files, one per line.
func reportTransform(c *cobra.Command, verb string, result *templates.TransformResult, dryRun bool) {
	status := output.StatusChanged
	if dryRun {
		status = "would change"
	}
	for _, f := range result.Changed {
		fmt.Fprintln(c.OutOrStdout(), output.FormatFileLine(f, status))
	}
	for _, f := range result.Skipped {
		output.Debug("skipped binary file", "path", f)
	}

	msg := fmt.Sprintf("%d files %s", len(result.Changed), verb)
	if dryRun {
		msg = fmt.Sprintf("%d files would be %s", len(result.Changed), verb)
	}
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(msg))
}
