package templates

import (
	_ "embed"
	"errors"
	"fmt"
	"path"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	oerrors "github.com/swiftfw/cli/internal/errors"
	"github.com/swiftfw/cli/internal/output"
)

//go:embed catalog.yaml
var catalogYAML []byte

//go:embed catalog.cue
var catalogSchemaCUE []byte

// DefaultCatalogName is the location reported for the embedded catalog.
const DefaultCatalogName = "catalog.yaml"

// DefaultCatalog returns the embedded catalog, checked against the embedded tree.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML, DefaultCatalogName, TemplateFS())
}

// DefaultCatalogData returns the embedded catalog YAML.
func DefaultCatalogData() []byte {
	return append([]byte(nil), catalogYAML...)
}

// LoadCatalog reads a catalog file from fsys and checks it against templates.
func LoadCatalog(fsys afero.Fs, file string, templates afero.Fs) (*Catalog, error) {
	data, err := afero.ReadFile(fsys, file)
	if err != nil {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("cannot read catalog: %v", err),
			file,
			"Pass an existing catalog with --catalog or omit it to use the built-in one.",
		)
	}
	return ParseCatalog(data, file, templates)
}

// ParseCatalog decodes catalog YAML, validates it against the catalog schema
// and checks every entry against the template tree.
func ParseCatalog(data []byte, location string, templates afero.Fs) (*Catalog, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, oerrors.NewCatalogError(fmt.Sprintf("malformed YAML: %v", err), location, "")
	}

	ctx := cuecontext.New()
	schema := ctx.CompileBytes(catalogSchemaCUE, cue.Filename("catalog.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling catalog schema: %w", schema.Err())
	}

	value := schema.LookupPath(cue.ParsePath("#Catalog")).Unify(ctx.Encode(raw))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, schemaErrors(err, location)
	}

	var c Catalog
	if err := value.Decode(&c); err != nil {
		return nil, oerrors.NewCatalogError(fmt.Sprintf("decoding catalog: %v", err), location, "")
	}

	if errs := Check(&c, templates, location); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	output.Debug("loaded template catalog", "location", location, "groups", len(c.Groups))
	return &c, nil
}

// Check verifies that every source exists in templates, that destinations
// are unique relative paths, and that group names are unique.
func Check(c *Catalog, templates afero.Fs, location string) []error {
	var errs []error
	groups := make(map[string]bool, len(c.Groups))
	destinations := make(map[string]string)

	for gi, g := range c.Groups {
		if groups[g.Name] {
			errs = append(errs, oerrors.NewCatalogError(
				fmt.Sprintf("duplicate group %q", g.Name), location, fmt.Sprintf("groups.%d.name", gi)))
		}
		groups[g.Name] = true

		for ei, e := range g.Entries {
			field := fmt.Sprintf("groups.%d.entries.%d", gi, ei)

			if err := ValidateRelativePath(e.Source); err != nil {
				errs = append(errs, oerrors.NewCatalogError(err.Error(), location, field+".source"))
				continue
			}
			if templates != nil {
				info, err := templates.Stat(e.Source)
				switch {
				case err != nil:
					errs = append(errs, oerrors.NewCatalogError(
						fmt.Sprintf("source %q does not exist in the template tree", e.Source), location, field+".source"))
				case info.IsDir():
					errs = append(errs, oerrors.NewCatalogError(
						fmt.Sprintf("source %q is a directory", e.Source), location, field+".source"))
				}
			}

			dest := e.DestinationPattern()
			if err := ValidateRelativePath(dest); err != nil {
				errs = append(errs, oerrors.NewCatalogError(err.Error(), location, field+".destination"))
				continue
			}
			if prev, ok := destinations[dest]; ok {
				errs = append(errs, oerrors.NewCatalogError(
					fmt.Sprintf("destination %q is also produced by %s", dest, prev), location, field+".destination"))
				continue
			}
			destinations[dest] = g.Name + "/" + e.Source
		}
	}

	if _, ok := destinations[CertificateDestination]; ok {
		errs = append(errs, oerrors.NewCatalogError(
			fmt.Sprintf("destination %q is reserved for the signing certificate", CertificateDestination), location, "groups"))
	}

	return errs
}

// DestinationPattern returns the destination, defaulting to the source.
func (e Entry) DestinationPattern() string {
	if e.Destination != "" {
		return e.Destination
	}
	return e.Source
}

// Group returns the group with the given name.
func (c *Catalog) Group(name string) (Group, bool) {
	for _, g := range c.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// Sources returns every template source referenced by the catalog.
func (c *Catalog) Sources() map[string]bool {
	out := make(map[string]bool)
	for _, g := range c.Groups {
		for _, e := range g.Entries {
			out[e.Source] = true
		}
	}
	return out
}

// ValidateRelativePath rejects empty, absolute and escaping slash paths.
func ValidateRelativePath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return fmt.Errorf("path %q must be relative and slash-separated", p)
	}
	if clean := path.Clean(p); clean != p || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("path %q must be clean and stay inside the project", p)
	}
	return nil
}

func schemaErrors(err error, location string) error {
	var errs []error
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		errs = append(errs, oerrors.NewCatalogError(fmt.Sprintf(format, args...), location, strings.Join(e.Path(), ".")))
	}
	if len(errs) == 0 {
		return oerrors.NewCatalogError(err.Error(), location, "")
	}
	return errors.Join(errs...)
}
