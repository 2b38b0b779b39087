// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/swiftfw/cli/internal/output"
	"github.com/swiftfw/cli/internal/templates"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// CopyTemplates copies the built-in template tree to a temporary directory
// and returns it.
func CopyTemplates(t *testing.T) string {
	t.Helper()
	dst := t.TempDir()
	tree := templates.TemplateFS()

	files, err := templates.ListTemplateFiles(tree, ".")
	if err != nil {
		t.Fatalf("failed to list templates: %v", err)
	}
	for _, f := range files {
		data, err := afero.ReadFile(tree, f)
		if err != nil {
			t.Fatalf("failed to read template %s: %v", f, err)
		}
		WriteFile(t, dst, f, string(data))
	}
	return dst
}

// CaptureLogs routes log output to a buffer without timestamps until the
// test ends.
func CaptureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	output.SetupLogging(output.LogConfig{Timestamps: output.BoolPtr(false)})
	t.Cleanup(output.SetErrOutput(&buf))
	return &buf
}
