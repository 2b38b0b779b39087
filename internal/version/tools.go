package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// toolVersionRegex matches version strings like "0.38.0" or "v1.2.3-beta".
var toolVersionRegex = regexp.MustCompile(`v?\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9.]+)?`)

// detectTimeout bounds a single "<tool> --version" invocation.
const detectTimeout = 5 * time.Second

// ToolInfo describes an external tool the generated project relies on.
type ToolInfo struct {
	// Name is the executable name.
	Name string `json:"name"`

	// Version is the detected version, "" when unknown.
	Version string `json:"version,omitempty"`

	// Path is the resolved executable path.
	Path string `json:"path,omitempty"`

	// Found indicates the tool is on PATH.
	Found bool `json:"found"`

	// Message provides additional information when detection failed.
	Message string `json:"message,omitempty"`
}

// String returns a one-line description of the tool.
func (t ToolInfo) String() string {
	switch {
	case !t.Found:
		return fmt.Sprintf("  %-10s not found", t.Name)
	case t.Version == "":
		return fmt.Sprintf("  %-10s %s (%s)", t.Name, t.Path, t.Message)
	default:
		return fmt.Sprintf("  %-10s %s (%s)", t.Name, t.Version, t.Path)
	}
}

// Tool names probed by DetectTools.
var defaultTools = [][]string{
	{"make", "--version"},
	{"carthage", "version"},
	{"xcodebuild", "-version"},
	{"pod", "--version"},
}

// DetectTools probes the tools used by post-generation actions.
func DetectTools(ctx context.Context) []ToolInfo {
	out := make([]ToolInfo, 0, len(defaultTools))
	for _, t := range defaultTools {
		out = append(out, DetectTool(ctx, t[0], t[1:]...))
	}
	return out
}

// DetectTool finds name on PATH and runs it with versionArgs to read its version.
func DetectTool(ctx context.Context, name string, versionArgs ...string) ToolInfo {
	path, err := exec.LookPath(name)
	if err != nil {
		return ToolInfo{Name: name, Message: name + " not found in PATH"}
	}

	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, versionArgs...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		return ToolInfo{Name: name, Path: path, Found: true, Message: "failed to get version: " + err.Error()}
	}

	v, err := extractVersion(buf.String())
	if err != nil {
		return ToolInfo{Name: name, Path: path, Found: true, Message: err.Error()}
	}

	return ToolInfo{Name: name, Version: v, Path: path, Found: true}
}

// extractVersion extracts the first version number from tool output.
func extractVersion(output string) (string, error) {
	first := strings.SplitN(output, "\n", 2)[0]

	match := toolVersionRegex.FindString(first)
	if match == "" {
		match = toolVersionRegex.FindString(output)
	}
	if match == "" {
		return "", &versionParseError{output: output}
	}

	return strings.TrimPrefix(match, "v"), nil
}

// versionParseError indicates failure to parse version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse version from output: " + strings.TrimSpace(e.output)
}
