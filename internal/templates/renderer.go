package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/swiftfw/cli/internal/output"
)

const (
	fileMode       os.FileMode = 0o644
	executableMode os.FileMode = 0o755
	dirMode        os.FileMode = 0o755
)

// Renderer materializes selections with token substitution.
type Renderer struct {
	data      TemplateData
	replacer  *strings.Replacer
	templates afero.Fs
	host      afero.Fs
	dest      afero.Fs
	root      string
}

// RendererOptions configures where a renderer reads and writes.
type RendererOptions struct {
	// Templates holds template sources. Defaults to the embedded tree.
	Templates afero.Fs

	// Host holds external sources. Defaults to the OS filesystem.
	Host afero.Fs

	// Dest receives rendered files. Defaults to Host.
	Dest afero.Fs

	// Root is the output directory on Dest.
	Root string
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data TemplateData, opts RendererOptions) *Renderer {
	if opts.Templates == nil {
		opts.Templates = TemplateFS()
	}
	if opts.Host == nil {
		opts.Host = afero.NewOsFs()
	}
	if opts.Dest == nil {
		opts.Dest = opts.Host
	}
	return &Renderer{
		data:      data,
		replacer:  data.replacer(),
		templates: opts.Templates,
		host:      opts.Host,
		dest:      opts.Dest,
		root:      opts.Root,
	}
}

// RenderFile replaces every content token in content.
func (r *Renderer) RenderFile(content []byte) []byte {
	return []byte(r.replacer.Replace(string(content)))
}

// RenderString replaces every content token in s.
func (r *Renderer) RenderString(s string) string {
	return r.replacer.Replace(s)
}

// Render writes a single selection and returns its file status.
// Existing files are overwritten.
func (r *Renderer) Render(sel Selection) (string, error) {
	src := r.templates
	if sel.External {
		src = r.host
	}

	content, err := afero.ReadFile(src, sel.Source)
	if err != nil {
		return output.StatusFailed, fmt.Errorf("reading %s: %w", sel.Source, err)
	}

	if sel.Mode == Substitute && !sel.External {
		content = r.RenderFile(content)
	}

	target := filepath.Join(r.root, filepath.FromSlash(sel.Destination))
	if err := r.dest.MkdirAll(filepath.Dir(target), dirMode); err != nil {
		return output.StatusFailed, fmt.Errorf("creating directory for %s: %w", sel.Destination, err)
	}

	status := output.StatusCreated
	if _, err := r.dest.Stat(target); err == nil {
		status = output.StatusOverwritten
	}

	perm := fileMode
	if sel.Executable {
		perm = executableMode
	}

	if err := afero.WriteFile(r.dest, target, content, perm); err != nil {
		return output.StatusFailed, fmt.Errorf("writing %s: %w", sel.Destination, err)
	}
	if sel.Executable {
		// WriteFile keeps the mode of an existing file.
		if err := r.dest.Chmod(target, perm); err != nil {
			output.Debug("could not set file mode", "path", sel.Destination, "error", err)
		}
	}

	output.Debug("rendered file", "source", sel.Source, "destination", sel.Destination, "mode", sel.Mode)
	return status, nil
}
