package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_DefaultConfigIsValid(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(DefaultConfig()))
	assert.NoError(t, v.Validate(&Config{}))
}

func TestValidator_RejectsEmptyValues(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name  string
		cfg   *Config
		field string
	}{
		{
			name:  "empty bootstrap program",
			cfg:   &Config{Generate: GenerateConfig{BootstrapCommand: []string{""}}},
			field: "generate.bootstrapCommand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.cfg)
			require.Error(t, err)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.NotEmpty(t, verrs)
			assert.Contains(t, verrs[0].Field, tt.field)
		})
	}
}

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generate:\n  openCommand: xed\n"), 0o644))

	assert.NoError(t, v.ValidateFile(path))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{{Field: "generate.openCommand", Message: "empty"}}
	assert.Contains(t, errs.Error(), "generate.openCommand: empty")
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())
}
