package templates

import (
	"regexp"
	"strings"
)

// Content tokens embedded in template text.
const (
	TokenProjectName      = "{{ .ProjectName }}"
	TokenOrganizationName = "{{ .OrganizationName }}"
	TokenOrganizationID   = "{{ .OrganizationID }}"
	TokenGitHubUser       = "{{ .GitHubUser }}"

	// TokenBundleID stands for OrganizationID + "." + ProjectName.
	TokenBundleID = "{{ .BundleID }}"
)

// PathToken is replaced by the project name in destination paths.
const PathToken = "PROJECT_NAME"

// Stand-in literals used by the editable, detemplatified tree.
// Xcode turns '_' into '-' inside bundle identifiers, hence the hyphens.
const (
	StandInProjectName      = "PROJECT_NAME"
	StandInOrganizationName = "ORGANIZATION_NAME"
	StandInOrganizationID   = "ORGANIZATION-ID"
	StandInGitHubUser       = "GITHUB_USER"
	StandInBundleID         = StandInOrganizationID + ".PROJECT-NAME"
)

// LeakPattern matches any stand-in, path token or token delimiter that must
// not survive rendering.
var LeakPattern = regexp.MustCompile(`PROJECT-NAME|PROJECT_NAME|ORGANIZATION-ID|ORGANIZATION_NAME|GITHUB_USER|\{\{|\}\}`)

// tokenPairs maps stand-ins to tokens. The compound pair comes first so the
// standalone organization id never consumes part of a bundle identifier.
var tokenPairs = [][2]string{
	{StandInBundleID, TokenBundleID},
	{StandInProjectName, TokenProjectName},
	{StandInOrganizationName, TokenOrganizationName},
	{StandInOrganizationID, TokenOrganizationID},
	{StandInGitHubUser, TokenGitHubUser},
}

// ContainsLeak reports whether s holds any leftover token text.
func ContainsLeak(s string) bool {
	return LeakPattern.MatchString(s)
}

// ResolveDestination replaces the path token in every segment of pattern.
func ResolveDestination(pattern, projectName string) string {
	return strings.ReplaceAll(pattern, PathToken, projectName)
}

func (d TemplateData) replacer() *strings.Replacer {
	return strings.NewReplacer(
		TokenBundleID, d.BundleID(),
		TokenProjectName, d.ProjectName,
		TokenOrganizationName, d.OrganizationName,
		TokenOrganizationID, d.OrganizationID,
		TokenGitHubUser, d.GitHubUser,
	)
}

func templatifyReplacer() *strings.Replacer {
	args := make([]string, 0, len(tokenPairs)*2)
	for _, p := range tokenPairs {
		args = append(args, p[0], p[1])
	}
	return strings.NewReplacer(args...)
}

func detemplatifyReplacer() *strings.Replacer {
	args := make([]string, 0, len(tokenPairs)*2)
	for _, p := range tokenPairs {
		args = append(args, p[1], p[0])
	}
	return strings.NewReplacer(args...)
}
