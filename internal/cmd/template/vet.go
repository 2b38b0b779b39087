package template

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/swiftfw/cli/internal/cmdtypes"
	"github.com/swiftfw/cli/internal/cmdutil"
	"github.com/swiftfw/cli/internal/output"
	"github.com/swiftfw/cli/internal/templates"
)

// NewVetCmd creates the template vet command.
func NewVetCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var tf cmdutil.TemplateFlags

	c := &cobra.Command{
		Use:   "vet",
		Short: "Validate the template catalog against the template tree",
		Long: `Validate the template catalog against its schema and the template tree.

Errors: schema violations, missing sources, duplicate destinations.
Warnings: template files no group references, substituted sources that still
contain stand-ins such as PROJECT_NAME (run 'swiftfw template templatify').`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			tree, catalog, err := tf.Load()
			if err != nil {
				return cmdutil.PrintError("template catalog is invalid", err)
			}

			warnings, err := vetTree(tree, catalog)
			if err != nil {
				return cmdutil.PrintError("reading template tree failed", err)
			}
			for _, w := range warnings {
				output.Warn(w)
			}

			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf(
				"Template catalog is valid (%d groups, %d warnings)", len(catalog.Groups), len(warnings))))
			return nil
		},
	}

	tf.AddTo(c)
	return c
}

// vetTree returns warnings for unreferenced files and dirty substituted sources.
func vetTree(tree afero.Fs, catalog *templates.Catalog) ([]string, error) {
	files, err := templates.ListTemplateFiles(tree, ".")
	if err != nil {
		return nil, err
	}

	sources := catalog.Sources()
	var warnings []string
	for _, f := range files {
		if f == templates.DefaultCatalogName {
			continue
		}
		if !sources[f] {
			warnings = append(warnings, fmt.Sprintf("%s is not referenced by any group", f))
		}
	}

	for _, g := range catalog.Groups {
		for _, e := range g.Entries {
			if e.Mode != templates.Substitute {
				continue
			}
			data, err := afero.ReadFile(tree, e.Source)
			if err != nil {
				return nil, err
			}
			if s := string(data); templates.TemplatifyString(s) != s {
				warnings = append(warnings, fmt.Sprintf("%s contains stand-ins that should be tokens", e.Source))
			}
		}
	}

	return warnings, nil
}
