package templates

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/swiftfw/cli/internal/output"
)

// DefaultExclude lists subtrees never rewritten: vendored Carthage checkouts.
var DefaultExclude = []string{"Carthage"}

// binarySniffLen is how many leading bytes are checked for a NUL byte.
const binarySniffLen = 8000

// TransformOptions configures Templatify and Detemplatify.
type TransformOptions struct {
	// Exclude lists slash-separated subtrees, relative to the root, left untouched.
	// Nil means DefaultExclude.
	Exclude []string

	// DryRun reports changes without writing them.
	DryRun bool
}

// TransformResult lists the files a transform touched.
type TransformResult struct {
	// Changed files, relative to the root, sorted.
	Changed []string

	// Skipped binary files, relative to the root, sorted.
	Skipped []string
}

// TemplatifyString replaces stand-in literals with content tokens.
func TemplatifyString(s string) string {
	return templatifyReplacer().Replace(s)
}

// DetemplatifyString replaces content tokens with stand-in literals.
func DetemplatifyString(s string) string {
	return detemplatifyReplacer().Replace(s)
}

// Templatify turns an editable project tree back into template form.
func Templatify(fsys afero.Fs, root string, opts TransformOptions) (*TransformResult, error) {
	return transform(fsys, root, opts, templatifyReplacer(), "templatify")
}

// Detemplatify turns a template tree into a project Xcode can open.
func Detemplatify(fsys afero.Fs, root string, opts TransformOptions) (*TransformResult, error) {
	return transform(fsys, root, opts, detemplatifyReplacer(), "detemplatify")
}

func transform(fsys afero.Fs, root string, opts TransformOptions, r *strings.Replacer, op string) (*TransformResult, error) {
	exclude := opts.Exclude
	if exclude == nil {
		exclude = DefaultExclude
	}

	result := &TransformResult{}

	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if rel != "." && excluded(rel, exclude) {
			output.Debug("excluded from "+op, "path", rel)
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		content, err := afero.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", rel, err)
		}

		if isBinary(content) {
			result.Skipped = append(result.Skipped, rel)
			return nil
		}

		updated := r.Replace(string(content))
		if updated == string(content) {
			return nil
		}

		result.Changed = append(result.Changed, rel)
		if opts.DryRun {
			return nil
		}

		if err := afero.WriteFile(fsys, path, []byte(updated), info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", rel, err)
		}
		output.Debug(op, "path", rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(result.Changed)
	sort.Strings(result.Skipped)
	return result, nil
}

func excluded(rel string, exclude []string) bool {
	for _, e := range exclude {
		e = strings.Trim(e, "/")
		if rel == e || strings.HasPrefix(rel, e+"/") {
			return true
		}
	}
	return false
}

func isBinary(content []byte) bool {
	n := min(len(content), binarySniffLen)
	return bytes.IndexByte(content[:n], 0) >= 0
}
