//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrCatalog)
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrNotFound, ErrAborted)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid value",
		Location: "/path/to/catalog.yaml",
		Field:    "groups.0.include",
		Context:  map[string]string{"Template": "framework", "Group": "xcode"},
		Hint:     "Use one of always, cocoapods, travis, gitlab",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: /path/to/catalog.yaml")
	assert.Contains(t, output, "Field: groups.0.include")
	assert.Contains(t, output, "Template: framework")
	assert.Contains(t, output, "invalid value")
	assert.Contains(t, output, "Hint: Use one of always")

	// Context keys are rendered in sorted order.
	assert.Less(t, strings.Index(output, "Group:"), strings.Index(output, "Template:"))
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError(
		"invalid project name",
		"",
		"projectName",
		"Use letters, digits, hyphens and underscores",
	)

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "invalid project name", detail.Message)
	assert.Equal(t, "projectName", detail.Field)
}

func TestNewCatalogError(t *testing.T) {
	err := NewCatalogError("source does not exist", "catalog.yaml", "groups.0.entries.1.source")

	assert.True(t, errors.Is(err, ErrCatalog))
	assert.Contains(t, err.Error(), "invalid template catalog")
	assert.Contains(t, err.Error(), "swiftfw template vet")
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrNotFound, "template missing")

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Contains(t, wrapped.Error(), "template missing")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"exit error", &ExitError{Code: ExitNotFound, Err: errors.New("x")}, ExitNotFound},
		{"validation", fmt.Errorf("wrap: %w", ErrValidation), ExitValidationError},
		{"catalog", NewCatalogError("bad", "", ""), ExitValidationError},
		{"permission", NewPermissionError("denied", nil, ""), ExitPermissionDenied},
		{"not found", NewNotFoundError("gone", "", ""), ExitNotFound},
		{"aborted", Wrap(ErrAborted, "prompt"), ExitAborted},
		{"other", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := NewNotFoundError("missing", "", "")
	exitErr := NewExitError(inner, ExitNotFound)

	assert.True(t, errors.Is(exitErr, ErrNotFound))
	assert.Equal(t, inner.Error(), exitErr.Error())
	assert.Equal(t, "Not Found", ExitCodeName(exitErr.Code))
}
