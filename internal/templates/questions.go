package templates

import (
	"context"

	"github.com/spf13/afero"

	"github.com/swiftfw/cli/internal/config"
	"github.com/swiftfw/cli/internal/output"
	"github.com/swiftfw/cli/internal/prompt"
)

// Answer names.
const (
	AnswerProjectName      = "projectName"
	AnswerOrganizationName = "organizationName"
	AnswerOrganizationID   = "organizationId"
	AnswerCocoaPods        = "cocoapods"
	AnswerGitHubUser       = "githubUser"
	AnswerTravis           = "travis"
	AnswerGitLab           = "gitlab"
	AnswerCertPath         = "certPath"
	AnswerAskCertPathAgain = "askCertPathAgain"
)

// Defaults offered by the questions.
const (
	DefaultProjectName      = "MyProject"
	DefaultOrganizationName = "MyOrg"
	DefaultOrganizationID   = "org.my"
	DefaultCertPath         = "path/to/development.p12"
)

// Questions returns the ordered prompts of a generation run. host is the
// filesystem the certificate path is checked against.
func Questions(host afero.Fs) []prompt.Step {
	return []prompt.Step{
		prompt.Input(AnswerProjectName, "Project Name", DefaultProjectName),
		{
			Name:    AnswerOrganizationName,
			Kind:    prompt.KindInput,
			Message: "Organization Name",
			Default: DefaultOrganizationName,
			Persist: true,
		},
		{
			Name:    AnswerOrganizationID,
			Kind:    prompt.KindInput,
			Message: "Organization Identifier",
			Default: DefaultOrganizationID,
			Persist: true,
		},
		prompt.Confirm(AnswerCocoaPods, "Would you like to distribute via CocoaPods?", true),
		{
			Name:    AnswerGitHubUser,
			Kind:    prompt.KindInput,
			Message: "Would you mind telling me your username on GitHub?",
			Persist: true,
		},
		prompt.Confirm(AnswerTravis, "Would you like to enable Travis CI?", true),
		prompt.Confirm(AnswerGitLab, "Would you like to enable GitLab CI?", true),
		{
			Name:     AnswerCertPath,
			Kind:     prompt.KindInput,
			Message:  "Development Certificate Path",
			Default:  DefaultCertPath,
			Persist:  true,
			When:     func(a prompt.Answers) bool { return a.Bool(AnswerTravis) },
			Validate: CertificateValidator(host),
		},
	}
}

var askCertPathAgain = prompt.Confirm(
	AnswerAskCertPathAgain,
	"The certificate you provide does not exist, specify again?",
	true,
)

// CertificateValidator accepts a path that resolves to a regular file on
// host, storing the absolute path. Anything else is rewritten to nil and the
// user is asked whether to try again.
func CertificateValidator(host afero.Fs) prompt.ValidateFunc {
	return func(_ context.Context, value any, _ prompt.Answers) (prompt.Validation, error) {
		raw, _ := value.(string)
		if raw != "" {
			resolved := config.ResolvePath(raw)
			info, err := host.Stat(resolved)
			if err == nil && info.Mode().IsRegular() {
				return prompt.Validation{Outcome: prompt.Accept, Value: resolved}, nil
			}
			output.Debug("certificate not usable", "path", resolved, "error", err)
		}

		return prompt.Validation{
			Outcome:  prompt.Rewrite,
			Value:    nil,
			AskAgain: &askCertPathAgain,
		}, nil
	}
}
