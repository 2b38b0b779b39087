package prompt

import (
	"context"
	"fmt"

	"github.com/swiftfw/cli/internal/output"
)

// Session runs steps against a Prompter and a persisted-answer Store.
type Session struct {
	prompter Prompter
	store    Store
}

// NewSession creates a session. A nil store disables persistence.
func NewSession(p Prompter, s Store) *Session {
	if s == nil {
		s = NewMemoryStore(nil)
	}
	return &Session{prompter: p, store: s}
}

// Run asks every step in order and returns the collected answers.
//
// Values present in initial are used instead of prompting the first time
// their step is reached; they are converted to the step's kind and still pass
// through the step's validator. A preset that cannot be converted fails with
// errors.ErrValidation.
// The returned record is a private copy and is never modified afterwards.
func (s *Session) Run(ctx context.Context, steps []Step, initial Answers) (Answers, error) {
	stored, err := s.store.Load()
	if err != nil {
		output.Warn("could not read persisted answers", "error", err)
		stored = Answers{}
	}

	preset := initial.Clone()
	answers := Answers{}

	for _, step := range steps {
		if step.When != nil && !step.When(answers) {
			output.Debug("skipping prompt", "step", step.Name)
			continue
		}

		value, err := s.runStep(ctx, step, answers, stored, preset)
		if err != nil {
			return nil, err
		}

		answers[step.Name] = value

		if step.Persist && value != nil {
			if err := s.store.Save(step.Name, value); err != nil {
				output.Warn("could not persist answer", "step", step.Name, "error", err)
			}
		}
	}

	return answers.Clone(), nil
}

// runStep asks one step until its validator stops requesting another round.
func (s *Session) runStep(ctx context.Context, step Step, answers, stored, preset Answers) (any, error) {
	def := step.Default
	if step.Persist {
		if v, ok := stored.Lookup(step.Name); ok && v != nil {
			def = v
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var raw any
		if v, ok := preset.Lookup(step.Name); ok {
			delete(preset, step.Name)
			coerced, err := coercePreset(step, v)
			if err != nil {
				return nil, err
			}
			raw = coerced
		} else {
			v, err := s.prompter.Ask(ctx, step, def)
			if err != nil {
				return nil, fmt.Errorf("prompt %s: %w", step.Name, err)
			}
			raw = v
		}

		if step.Validate == nil {
			return raw, nil
		}

		verdict, err := step.Validate(ctx, raw, answers)
		if err != nil {
			return nil, fmt.Errorf("validating %s: %w", step.Name, err)
		}

		output.Debug("validated prompt", "step", step.Name, "outcome", verdict.Outcome)

		switch verdict.Outcome {
		case Accept:
			return verdict.Value, nil
		case Retry:
			continue
		case Rewrite:
			if verdict.AskAgain == nil {
				return verdict.Value, nil
			}
			again, err := s.askAgain(ctx, *verdict.AskAgain, preset)
			if err != nil {
				return nil, err
			}
			if !again {
				return verdict.Value, nil
			}
		default:
			return nil, fmt.Errorf("validating %s: unknown outcome %d", step.Name, verdict.Outcome)
		}
	}
}

func (s *Session) askAgain(ctx context.Context, step Step, preset Answers) (bool, error) {
	if v, ok := preset.Lookup(step.Name); ok {
		delete(preset, step.Name)
		coerced, err := coercePreset(step, v)
		if err != nil {
			return false, err
		}
		b, _ := coerced.(bool)
		return b, nil
	}

	v, err := s.prompter.Ask(ctx, step, step.Default)
	if err != nil {
		return false, fmt.Errorf("prompt %s: %w", step.Name, err)
	}
	b, _ := v.(bool)
	return b, nil
}
