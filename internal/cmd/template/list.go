package template

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swiftfw/cli/internal/cmdtypes"
	"github.com/swiftfw/cli/internal/cmdutil"
	"github.com/swiftfw/cli/internal/output"
	"github.com/swiftfw/cli/internal/templates"
)

// NewListCmd creates the template list command.
func NewListCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var tf cmdutil.TemplateFlags

	c := &cobra.Command{
		Use:   "list",
		Short: "List template groups and files",
		Long: `List the groups of the template catalog, the answer that includes each
group, and the files it produces.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			_, catalog, err := tf.Load()
			if err != nil {
				return cmdutil.PrintError("loading templates failed", err)
			}
			fmt.Fprintln(c.OutOrStdout(), renderCatalog(catalog))
			return nil
		},
	}

	tf.AddTo(c)
	return c
}

// renderCatalog renders one table row per catalog entry.
func renderCatalog(c *templates.Catalog) string {
	tbl := output.NewTable("GROUP", "INCLUDE", "MODE", "SOURCE", "DESTINATION")
	for _, g := range c.Groups {
		for _, e := range g.Entries {
			mode := string(e.Mode)
			if e.Executable {
				mode += " +x"
			}
			tbl.Row(g.Name, string(g.Include), mode, e.Source, e.DestinationPattern())
		}
	}

	var b strings.Builder
	b.WriteString(tbl.String())
	b.WriteString("\n")
	b.WriteString(output.StyleDim.Render(fmt.Sprintf(
		"%s is replaced by the project name; with travis, an accepted certificate is copied to %s",
		templates.PathToken, templates.CertificateDestination)))
	return b.String()
}
