package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplatifyString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bundle identifier becomes compound token",
			input: "PRODUCT_BUNDLE_IDENTIFIER = ORGANIZATION-ID.PROJECT-NAME;",
			want:  "PRODUCT_BUNDLE_IDENTIFIER = {{ .BundleID }};",
		},
		{
			name:  "standalone organization id",
			input: "ORGANIZATION-ID.UnitTests",
			want:  "{{ .OrganizationID }}.UnitTests",
		},
		{
			name:  "project and organization names",
			input: "PROJECT_NAME by ORGANIZATION_NAME",
			want:  "{{ .ProjectName }} by {{ .OrganizationName }}",
		},
		{
			name:  "github user",
			input: "https://github.com/GITHUB_USER/PROJECT_NAME.git",
			want:  "https://github.com/{{ .GitHubUser }}/{{ .ProjectName }}.git",
		},
		{
			name:  "underscore project name is not part of the compound",
			input: "ORGANIZATION-ID.PROJECT_NAME",
			want:  "{{ .OrganizationID }}.{{ .ProjectName }}",
		},
		{
			name:  "plain text untouched",
			input: "import UIKit",
			want:  "import UIKit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TemplatifyString(tt.input))
		})
	}
}

func TestDetemplatifyString(t *testing.T) {
	assert.Equal(t,
		"ORGANIZATION-ID.PROJECT-NAME ORGANIZATION-ID PROJECT_NAME ORGANIZATION_NAME GITHUB_USER",
		DetemplatifyString("{{ .BundleID }} {{ .OrganizationID }} {{ .ProjectName }} {{ .OrganizationName }} {{ .GitHubUser }}"),
	)
}

func TestTemplatifyString_RoundTrip(t *testing.T) {
	inputs := []string{
		"ORGANIZATION-ID.PROJECT-NAME",
		"Copyright © ORGANIZATION_NAME. All rights reserved.",
		"PROJECT_NAME/PROJECT_NAME.h ORGANIZATION-ID.UnitTests GITHUB_USER",
		"no stand-ins at all",
	}
	for _, in := range inputs {
		assert.Equal(t, in, DetemplatifyString(TemplatifyString(in)))
	}
}

func TestCompoundTokenNotSplit(t *testing.T) {
	out := TemplatifyString("ORGANIZATION-ID.PROJECT-NAME")
	assert.Equal(t, TokenBundleID, out)
	assert.NotContains(t, out, TokenOrganizationID)
}

func TestRenderBundleID(t *testing.T) {
	data := TemplateData{ProjectName: "example", OrganizationID: "org.example"}
	r := NewRenderer(data, RendererOptions{})
	assert.Equal(t, "org.example.example", r.RenderString(TokenBundleID))
}

func TestContainsLeak(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"example/example.swift", false},
		{"PROJECT_NAME/Info.plist", true},
		{"org.example.PROJECT-NAME", true},
		{"ORGANIZATION-ID", true},
		{"ORGANIZATION_NAME", true},
		{"GITHUB_USER", true},
		{"{{ .ProjectName }}", true},
		{"a }} b", true},
		{"func f() { return }", false},
		{"ORGANIZATIONNAME = \"Acme\";", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContainsLeak(tt.input), tt.input)
	}
}

func TestResolveDestination(t *testing.T) {
	assert.Equal(t,
		"example.xcodeproj/xcshareddata/xcschemes/example.xcscheme",
		ResolveDestination("PROJECT_NAME.xcodeproj/xcshareddata/xcschemes/PROJECT_NAME.xcscheme", "example"))
	assert.Equal(t, "Makefile", ResolveDestination("Makefile", "example"))
}
