// Package cmdutil provides shared command utilities for swiftfw subcommands.
// It centralizes flag group management, template source loading and error
// reporting.
package cmdutil

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/swiftfw/cli/internal/config"
	oerrors "github.com/swiftfw/cli/internal/errors"
	"github.com/swiftfw/cli/internal/templates"
)

// TemplateFlags holds flags selecting the template tree and catalog
// (new, template list, template vet).
type TemplateFlags struct {
	// Dir is an on-disk template tree replacing the embedded one.
	Dir string

	// Catalog is a catalog file replacing the embedded one.
	Catalog string
}

// AddTo registers the template flags on the given cobra command.
func (f *TemplateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Dir, "templates", "",
		"Template directory to use instead of the built-in templates")
	cmd.Flags().StringVar(&f.Catalog, "catalog", "",
		"Template catalog file (default: catalog.yaml in --templates, else built-in)")
}

// Custom reports whether either override is set.
func (f *TemplateFlags) Custom() bool {
	return f.Dir != "" || f.Catalog != ""
}

// Load returns the template tree and catalog selected by the flags.
// The catalog is checked against the returned tree.
func (f *TemplateFlags) Load() (afero.Fs, *templates.Catalog, error) {
	tree := templates.TemplateFS()
	if f.Dir != "" {
		dir := config.ResolvePath(f.Dir)
		fsys, err := templates.DirFS(dir)
		if err != nil {
			return nil, nil, oerrors.NewNotFoundError(
				"template directory not found", dir, "Pass an existing directory to --templates.")
		}
		tree = fsys
	}

	switch {
	case f.Catalog != "":
		c, err := templates.LoadCatalog(afero.NewOsFs(), config.ResolvePath(f.Catalog), tree)
		return tree, c, err
	case f.Dir != "":
		exists, err := afero.Exists(tree, templates.DefaultCatalogName)
		if err != nil {
			return nil, nil, err
		}
		if exists {
			c, err := templates.LoadCatalog(tree, templates.DefaultCatalogName, tree)
			return tree, c, err
		}
	}

	c, err := templates.ParseCatalog(templates.DefaultCatalogData(), templates.DefaultCatalogName, tree)
	return tree, c, err
}

// ResolveDir returns the directory argument, defaulting to the current directory.
func ResolveDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
