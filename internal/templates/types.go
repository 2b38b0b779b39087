// Package templates selects and materializes the Swift framework template tree.
package templates

import (
	"github.com/spf13/afero"

	"github.com/swiftfw/cli/internal/prompt"
)

// Mode is how an entry is materialized.
type Mode string

const (
	// Verbatim copies bytes unchanged.
	Verbatim Mode = "verbatim"

	// Substitute replaces content tokens with answer values.
	Substitute Mode = "substitute"
)

// Include names the flag gating a group.
type Include string

const (
	IncludeAlways    Include = "always"
	IncludeCocoaPods Include = "cocoapods"
	IncludeTravis    Include = "travis"
	IncludeGitLab    Include = "gitlab"
)

// Entry is a single catalog file.
type Entry struct {
	// Source is the path inside the template tree.
	Source string `json:"source" yaml:"source"`

	// Destination is the output path pattern. It may contain PathToken
	// in any segment. Defaults to Source.
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"`

	// Mode is verbatim or substitute.
	Mode Mode `json:"mode" yaml:"mode"`

	// Executable marks scripts written with the executable bit.
	Executable bool `json:"executable,omitempty" yaml:"executable,omitempty"`
}

// Group is an ordered set of entries sharing an inclusion flag.
type Group struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Include     Include `json:"include" yaml:"include"`
	Entries     []Entry `json:"entries" yaml:"entries"`
}

// Catalog is the static list of template groups in materialization order.
type Catalog struct {
	Groups []Group `json:"groups" yaml:"groups"`
}

// Selection is an entry chosen for a run with its destination resolved.
type Selection struct {
	// Source is a template tree path, or a host path when External is set.
	Source string

	// Destination is relative to the output directory, with PathToken replaced.
	Destination string

	Mode Mode

	Executable bool

	// External marks sources read from the host filesystem.
	External bool

	// Group is the catalog group the selection came from.
	Group string
}

// Flags are the feature switches of a run.
type Flags struct {
	CocoaPods   bool
	Travis      bool
	GitLab      bool
	SkipInstall bool
}

// Enabled reports whether a group with the given inclusion flag is materialized.
func (f Flags) Enabled(inc Include) bool {
	switch inc {
	case IncludeAlways:
		return true
	case IncludeCocoaPods:
		return f.CocoaPods
	case IncludeTravis:
		return f.Travis
	case IncludeGitLab:
		return f.GitLab
	default:
		return false
	}
}

// Run is a single generation: answers, certificate and flags.
type Run struct {
	Answers prompt.Answers

	// CertPath is the accepted certificate path, "" when absent.
	CertPath string

	Flags Flags
}

// NewRun builds a run from collected answers.
func NewRun(answers prompt.Answers, skipInstall bool) Run {
	return Run{
		Answers:  answers,
		CertPath: answers.String(AnswerCertPath),
		Flags: Flags{
			CocoaPods:   answers.Bool(AnswerCocoaPods),
			Travis:      answers.Bool(AnswerTravis),
			GitLab:      answers.Bool(AnswerGitLab),
			SkipInstall: skipInstall,
		},
	}
}

// ProjectName returns the project name answer.
func (r Run) ProjectName() string {
	return r.Answers.String(AnswerProjectName)
}

// Data returns the substitution values of the run.
func (r Run) Data() TemplateData {
	return TemplateData{
		ProjectName:      r.Answers.String(AnswerProjectName),
		OrganizationName: r.Answers.String(AnswerOrganizationName),
		OrganizationID:   r.Answers.String(AnswerOrganizationID),
		GitHubUser:       r.Answers.String(AnswerGitHubUser),
	}
}

// TemplateData holds the values substituted into content tokens.
type TemplateData struct {
	// ProjectName names the framework, its target and its Xcode project.
	ProjectName string

	// OrganizationName appears in copyright headers and the license.
	OrganizationName string

	// OrganizationID is the reverse-DNS prefix of bundle identifiers.
	OrganizationID string

	// GitHubUser owns the repository referenced by the podspec.
	GitHubUser string
}

// BundleID returns OrganizationID + "." + ProjectName.
func (d TemplateData) BundleID() string {
	return d.OrganizationID + "." + d.ProjectName
}

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// TargetDir is the directory to generate the project in.
	TargetDir string

	// Force allows generating into a non-empty directory.
	Force bool

	// Catalog is the template catalog. Defaults to the embedded catalog.
	Catalog *Catalog

	// Templates is the template tree. Defaults to the embedded tree.
	Templates afero.Fs

	// Host is used for external sources such as the certificate.
	Host afero.Fs

	// Dest is the filesystem written to. Defaults to Host.
	Dest afero.Fs
}

// GenerateResult contains the result of project generation.
type GenerateResult struct {
	// Files lists created destination paths in materialization order.
	Files []string

	// Statuses maps each file to created or overwritten.
	Statuses map[string]string

	// TargetDir is the directory where files were created.
	TargetDir string

	// ProjectName is the generated project name.
	ProjectName string
}
