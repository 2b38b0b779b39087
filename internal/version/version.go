// Package version provides version information for the swiftfw CLI.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// CUESDKVersion is the version of the CUE SDK used for schema validation.
const CUESDKVersion = "v0.15.4"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// CUESDKVersion is the CUE SDK version (embedded at build time).
	CUESDKVersion string `json:"cueSDKVersion"`
}

// GetInfo returns the current version information.
func GetInfo() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		CUESDKVersion: CUESDKVersion,
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("swiftfw:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s\n  CUE SDK:  %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.CUESDKVersion)
}

// FullVersionString returns version information followed by the detected
// external tools.
func FullVersionString(info Info, tools []ToolInfo) string {
	var b strings.Builder
	b.WriteString(info.String())
	if len(tools) > 0 {
		b.WriteString("\n\nTools:")
		for _, t := range tools {
			b.WriteString("\n")
			b.WriteString(t.String())
		}
	}
	return b.String()
}
