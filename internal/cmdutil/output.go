package cmdutil

import (
	"errors"

	oerrors "github.com/swiftfw/cli/internal/errors"
	"github.com/swiftfw/cli/internal/output"
)

// PrintError reports err under msg and returns an ExitError marked as printed,
// so main does not print it again. DetailErrors are printed in full; joined
// errors are printed one by one.
func PrintError(msg string, err error) error {
	if err == nil {
		return nil
	}

	output.Error(msg)
	for _, e := range flatten(err) {
		var detail *oerrors.DetailError
		if errors.As(e, &detail) {
			output.Details(detail.Error())
			continue
		}
		output.Details("Error: " + e.Error())
	}

	return &oerrors.ExitError{
		Code:    oerrors.ExitCodeFromError(err),
		Err:     err,
		Printed: true,
	}
}

// flatten expands errors.Join results into their members.
func flatten(err error) []error {
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Err != nil {
		err = exitErr.Err
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}
