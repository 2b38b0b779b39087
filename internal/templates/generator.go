package templates

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	oerrors "github.com/swiftfw/cli/internal/errors"
	"github.com/swiftfw/cli/internal/output"
)

// Generator materializes a run into a target directory.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	if opts.Host == nil {
		opts.Host = afero.NewOsFs()
	}
	if opts.Dest == nil {
		opts.Dest = opts.Host
	}
	if opts.Templates == nil {
		opts.Templates = TemplateFS()
	}
	return &Generator{opts: opts}
}

// Generate selects and renders every file of run.
// A write failure aborts the remaining files; files already written stay.
func (g *Generator) Generate(run Run) (*GenerateResult, error) {
	data := run.Data()
	if err := ValidateProjectName(data.ProjectName); err != nil {
		return nil, oerrors.NewValidationError(err.Error(), "", AnswerProjectName,
			"Project names may contain letters, digits, '-' and '_' and must start with a letter.")
	}

	catalog := g.opts.Catalog
	if catalog == nil {
		c, err := DefaultCatalog()
		if err != nil {
			return nil, err
		}
		catalog = c
	}

	if err := g.checkTargetDir(); err != nil {
		return nil, err
	}

	selections := Select(catalog, run)

	output.Debug("generating project",
		"name", data.ProjectName,
		"target", g.opts.TargetDir,
		"files", len(selections),
		"cocoapods", run.Flags.CocoaPods,
		"travis", run.Flags.Travis,
		"gitlab", run.Flags.GitLab)

	renderer := NewRenderer(data, RendererOptions{
		Templates: g.opts.Templates,
		Host:      g.opts.Host,
		Dest:      g.opts.Dest,
		Root:      g.opts.TargetDir,
	})

	result := &GenerateResult{
		Files:       make([]string, 0, len(selections)),
		Statuses:    make(map[string]string, len(selections)),
		TargetDir:   g.opts.TargetDir,
		ProjectName: data.ProjectName,
	}

	for _, sel := range selections {
		status, err := renderer.Render(sel)
		if err != nil {
			return result, err
		}
		if _, seen := result.Statuses[sel.Destination]; !seen {
			result.Files = append(result.Files, sel.Destination)
		}
		result.Statuses[sel.Destination] = status
	}

	return result, nil
}

// checkTargetDir validates the target directory.
func (g *Generator) checkTargetDir() error {
	fsys := g.opts.Dest

	info, err := fsys.Stat(g.opts.TargetDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}

	if !info.IsDir() {
		return oerrors.NewValidationError(
			fmt.Sprintf("%s is not a directory", g.opts.TargetDir), g.opts.TargetDir, "", "")
	}

	entries, err := afero.ReadDir(fsys, g.opts.TargetDir)
	if err != nil {
		return fmt.Errorf("reading target directory: %w", err)
	}

	if len(entries) > 0 && !g.opts.Force {
		return oerrors.NewValidationError(
			fmt.Sprintf("directory %s is not empty", g.opts.TargetDir),
			g.opts.TargetDir, "",
			"Use --force to generate into it anyway; existing files are overwritten.")
	}

	return nil
}
