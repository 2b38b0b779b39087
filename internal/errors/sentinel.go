package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template, file, or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrCatalog indicates a malformed template catalog.
	ErrCatalog = errors.New("malformed template catalog")

	// ErrAborted indicates the user aborted an interactive session.
	ErrAborted = errors.New("aborted")
)
