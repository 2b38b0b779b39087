package template

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/swiftfw/cli/internal/errors"
	"github.com/swiftfw/cli/internal/templates"
	"github.com/swiftfw/cli/internal/testutil"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

type fakeRunner struct {
	calls [][]string
	err   error
}

func (f *fakeRunner) Run(_ context.Context, _ string, name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.err
}

func TestNewTemplateCmd(t *testing.T) {
	cmd := NewTemplateCmd(nil)

	assert.Equal(t, "template", cmd.Use)
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"list", "vet", "templatify", "detemplatify"}, names)
}

func TestList_ShowsGroupsAndModes(t *testing.T) {
	cmd := NewListCmd(nil)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	got := out.String()
	for _, want := range []string{"xcode", "cocoapods", "travis", "gitlab", "verbatim", "verbatim +x", "PROJECT_NAME.podspec", ".gitignore"} {
		assert.Contains(t, got, want)
	}
	assert.Contains(t, got, templates.CertificateDestination)
}

func TestVet_BuiltinTemplates(t *testing.T) {
	logs := testutil.CaptureLogs(t)

	cmd := NewVetCmd(nil)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Template catalog is valid (7 groups, 0 warnings)")
	assert.NotContains(t, logs.String(), "not referenced")
}

func TestVet_WarnsOrphansAndDirtySources(t *testing.T) {
	logs := testutil.CaptureLogs(t)
	dir := testutil.CopyTemplates(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "NOTES.md"), []byte("notes\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "LICENSE"), []byte("Copyright ORGANIZATION_NAME\n"), 0o644))

	cmd := NewVetCmd(nil)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--templates", dir})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "2 warnings")
	assert.Contains(t, logs.String(), "NOTES.md is not referenced by any group")
	assert.Contains(t, logs.String(), "LICENSE contains stand-ins")
}

func TestVet_InvalidCatalog(t *testing.T) {
	testutil.CaptureLogs(t)
	dir := testutil.CopyTemplates(t)
	catalog := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte(`groups:
  - name: docs
    entries:
      - source: README.md
      - source: missing.md
        destination: README.md
`), 0o644))

	cmd := NewVetCmd(nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--templates", dir, "--catalog", catalog})
	err := cmd.Execute()
	require.Error(t, err)

	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.True(t, exitErr.Printed)
	assert.Equal(t, oerrors.ExitValidationError, exitErr.Code)
}

func TestDetemplatifyTemplatify_RoundTrip(t *testing.T) {
	testutil.CaptureLogs(t)
	dir := testutil.CopyTemplates(t)
	pbxproj := filepath.Join(dir, "PROJECT_NAME.xcodeproj", "project.pbxproj")
	original, err := os.ReadFile(pbxproj)
	require.NoError(t, err)

	out, err := execute(t, newDetemplatifyCmd(nil, &fakeRunner{}), dir)
	require.NoError(t, err)
	assert.Contains(t, out, "files detemplatified")

	opened, err := os.ReadFile(pbxproj)
	require.NoError(t, err)
	assert.NotContains(t, string(opened), "{{")
	assert.Contains(t, string(opened), "ORGANIZATION-ID.PROJECT-NAME")

	_, err = execute(t, NewTemplatifyCmd(nil), dir, "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stand-ins")
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

	out, err = execute(t, NewTemplatifyCmd(nil), dir)
	require.NoError(t, err)
	assert.Contains(t, out, "files templatified")

	restored, err := os.ReadFile(pbxproj)
	require.NoError(t, err)
	assert.Equal(t, string(original), string(restored))

	_, err = execute(t, NewTemplatifyCmd(nil), dir, "--check")
	assert.NoError(t, err)
}

func TestTemplatify_DryRunWritesNothing(t *testing.T) {
	testutil.CaptureLogs(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(file, []byte("# PROJECT_NAME\n"), 0o644))

	out, err := execute(t, NewTemplatifyCmd(nil), dir, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "1 files would be templatified")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "# PROJECT_NAME\n", string(data))
}

func TestTemplatify_Exclude(t *testing.T) {
	testutil.CaptureLogs(t)
	dir := t.TempDir()
	vendored := filepath.Join(dir, "Vendor", "x.swift")
	require.NoError(t, os.MkdirAll(filepath.Dir(vendored), 0o755))
	require.NoError(t, os.WriteFile(vendored, []byte("PROJECT_NAME"), 0o644))

	_, err := execute(t, NewTemplatifyCmd(nil), dir, "--exclude", "Vendor")
	require.NoError(t, err)

	data, err := os.ReadFile(vendored)
	require.NoError(t, err)
	assert.Equal(t, "PROJECT_NAME", string(data))
}

func TestDetemplatify_Open(t *testing.T) {
	logs := testutil.CaptureLogs(t)
	dir := testutil.CopyTemplates(t)
	runner := &fakeRunner{}

	out, err := execute(t, newDetemplatifyCmd(nil, runner), dir, "--open")
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "open", runner.calls[0][0])
	assert.Equal(t, "PROJECT_NAME.xcodeproj", runner.calls[0][1])
	assert.Contains(t, out, "Opened")

	failing := &fakeRunner{err: errors.New("no opener")}
	_, err = execute(t, newDetemplatifyCmd(nil, failing), dir, "--open")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "could not open project")
}
