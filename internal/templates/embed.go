package templates

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

//go:embed all:framework
var frameworkFS embed.FS

// templateRoot is the embedded directory holding the framework template tree.
const templateRoot = "framework"

// TemplateFS returns the embedded framework template tree as a read-only filesystem.
func TemplateFS() afero.Fs {
	sub, err := fs.Sub(frameworkFS, templateRoot)
	if err != nil {
		panic(err)
	}
	return afero.FromIOFS{FS: sub}
}

// DirFS returns an on-disk template tree rooted at dir, used by maintainers
// generating from a working copy.
func DirFS(dir string) (afero.Fs, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrInvalid}
	}
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

// ListTemplateFiles returns every file in a template tree, sorted, with
// slash-separated paths relative to root.
func ListTemplateFiles(fsys afero.Fs, root string) ([]string, error) {
	var files []string

	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
