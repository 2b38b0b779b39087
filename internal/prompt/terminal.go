package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	oerrors "github.com/swiftfw/cli/internal/errors"
)

// TerminalPrompter asks steps with interactive huh forms.
type TerminalPrompter struct{}

// NewTerminalPrompter creates a terminal prompter.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// Ask implements Prompter.
func (p *TerminalPrompter) Ask(ctx context.Context, step Step, def any) (any, error) {
	var (
		field huh.Field
		str   string
		yes   bool
	)

	switch step.Kind {
	case KindConfirm:
		yes, _ = def.(bool)
		field = huh.NewConfirm().
			Title(step.Message).
			Affirmative("Yes").
			Negative("No").
			Value(&yes)
	default:
		d := defaultString(def)
		field = huh.NewInput().
			Title(step.Message).
			Placeholder(d).
			Value(&str)
	}

	form := huh.NewForm(huh.NewGroup(field)).WithShowHelp(false)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, fmt.Errorf("%w: %s", oerrors.ErrAborted, step.Name)
		}
		return nil, err
	}

	if step.Kind == KindConfirm {
		return yes, nil
	}
	if str == "" {
		return defaultString(def), nil
	}
	return str, nil
}
