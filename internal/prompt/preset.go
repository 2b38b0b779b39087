package prompt

import (
	"fmt"
	"strconv"
	"strings"

	oerrors "github.com/swiftfw/cli/internal/errors"
)

// coercePreset converts a preset value to the type its step would have
// produced when asked: bool for confirm steps, string (or nil) for input steps.
func coercePreset(step Step, v any) (any, error) {
	switch step.Kind {
	case KindConfirm:
		switch t := v.(type) {
		case bool:
			return t, nil
		case string:
			switch strings.ToLower(strings.TrimSpace(t)) {
			case "y", "yes", "on":
				return true, nil
			case "n", "no", "off":
				return false, nil
			}
			if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
				return b, nil
			}
		}
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("answer %q must be yes or no, got %v", step.Name, v), "", step.Name,
			"Use true/false or yes/no for confirm answers.")
	default:
		switch t := v.(type) {
		case nil:
			return nil, nil
		case string:
			return t, nil
		case bool, int, int64, uint64, float64:
			return fmt.Sprint(t), nil
		}
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("answer %q must be a plain value, got %T", step.Name, v), "", step.Name,
			"Quote the value in the answers file.")
	}
}
