package templates

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftfw/cli/internal/prompt"
)

func TestQuestions_Order(t *testing.T) {
	var names []string
	for _, s := range Questions(afero.NewMemMapFs()) {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		AnswerProjectName,
		AnswerOrganizationName,
		AnswerOrganizationID,
		AnswerCocoaPods,
		AnswerGitHubUser,
		AnswerTravis,
		AnswerGitLab,
		AnswerCertPath,
	}, names)
}

func TestQuestions_CertPathSkippedWithoutTravis(t *testing.T) {
	p := prompt.NewScripted(map[string][]any{AnswerTravis: {false}})
	answers, err := prompt.NewSession(p, nil).Run(context.Background(), Questions(afero.NewMemMapFs()), nil)
	require.NoError(t, err)

	assert.False(t, answers.Has(AnswerCertPath))
	assert.NotContains(t, p.Asked(), AnswerCertPath)
}

func TestQuestions_CertificateAccepted(t *testing.T) {
	host := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(host, "/certs/dev.p12", []byte("p12"), 0o600))

	store := prompt.NewMemoryStore(nil)
	p := prompt.NewScripted(map[string][]any{
		AnswerCertPath:         {"/certs/missing.p12", "/certs/dev.p12"},
		AnswerAskCertPathAgain: {true},
	})

	answers, err := prompt.NewSession(p, store).Run(context.Background(), Questions(host), nil)
	require.NoError(t, err)
	assert.Equal(t, "/certs/dev.p12", answers[AnswerCertPath])

	saved, _ := store.Load()
	assert.Equal(t, "/certs/dev.p12", saved[AnswerCertPath])

	run := NewRun(answers, false)
	assert.Equal(t, "/certs/dev.p12", run.CertPath)
	assert.True(t, run.Flags.Travis)
}

func TestQuestions_CertificateRetryTerminates(t *testing.T) {
	host := afero.NewMemMapFs()
	require.NoError(t, host.MkdirAll("/certs/dir.p12", 0o755))

	tests := []struct {
		name    string
		paths   []any
		retries []any
	}{
		{"decline immediately", []any{"/nope.p12"}, []any{false}},
		{"decline after retries", []any{"/a.p12", "/b.p12", "/certs/dir.p12"}, []any{true, true, false}},
		{"empty path", []any{""}, []any{false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := prompt.NewScripted(map[string][]any{
				AnswerCertPath:         tt.paths,
				AnswerAskCertPathAgain: tt.retries,
			})
			answers, err := prompt.NewSession(p, nil).Run(context.Background(), Questions(host), nil)
			require.NoError(t, err)

			v, ok := answers.Lookup(AnswerCertPath)
			assert.True(t, ok)
			assert.Nil(t, v)
			assert.Equal(t, "", NewRun(answers, false).CertPath)
		})
	}
}

func TestQuestions_CertificateUnattended(t *testing.T) {
	p := prompt.NewScripted(nil)
	answers, err := prompt.NewSession(p, nil).Run(context.Background(), Questions(afero.NewMemMapFs()), nil)
	require.NoError(t, err)
	assert.Nil(t, answers[AnswerCertPath])
}

func TestNewRun(t *testing.T) {
	run := NewRun(prompt.Answers{
		AnswerProjectName:      "Kit",
		AnswerOrganizationName: "Acme",
		AnswerOrganizationID:   "com.acme",
		AnswerGitHubUser:       "octo",
		AnswerCocoaPods:        true,
		AnswerGitLab:           true,
	}, true)

	assert.Equal(t, Flags{CocoaPods: true, GitLab: true, SkipInstall: true}, run.Flags)
	assert.Equal(t, "Kit", run.ProjectName())
	assert.Equal(t, "com.acme.Kit", run.Data().BundleID())
	assert.Empty(t, run.CertPath)
}
