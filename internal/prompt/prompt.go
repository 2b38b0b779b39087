// Package prompt runs ordered, conditional question sequences and collects
// the answers into a flat record.
//
// Steps are evaluated strictly in declaration order. Each step may be skipped
// by a condition over the answers so far, may take its default from a
// persisted store, and may validate its value with a retry loop.
package prompt

import (
	"context"
	"maps"
)

// Kind is the kind of question a step asks.
type Kind string

const (
	// KindInput asks for a free-form string.
	KindInput Kind = "input"

	// KindConfirm asks a yes/no question.
	KindConfirm Kind = "confirm"
)

// Answers maps step names to accepted values. Values are string, bool or nil.
type Answers map[string]any

// Lookup returns the value stored under name and whether it is present.
func (a Answers) Lookup(name string) (any, bool) {
	v, ok := a[name]
	return v, ok
}

// Has reports whether name has an answer (possibly nil).
func (a Answers) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns the string answer for name, or "" when absent, nil or not a string.
func (a Answers) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Bool returns the boolean answer for name, or false when absent or not a bool.
func (a Answers) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

// Clone returns a shallow copy of the answers.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	maps.Copy(out, a)
	return out
}

// Outcome is the verdict of a step validator.
type Outcome int

const (
	// Accept stores the validated value and moves on.
	Accept Outcome = iota

	// Retry discards the value and asks the same step again.
	Retry

	// Rewrite stores a transformed value, then asks AskAgain (if set); a true
	// answer re-runs the step, anything else keeps the rewritten value.
	Rewrite
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Accept:
		return "accept"
	case Retry:
		return "retry"
	case Rewrite:
		return "rewrite"
	default:
		return "unknown"
	}
}

// Validation is returned by a step validator.
type Validation struct {
	Outcome Outcome

	// Value is the value to store for Accept and Rewrite.
	Value any

	// AskAgain is an optional confirm step asked after a Rewrite.
	AskAgain *Step
}

// ValidateFunc checks a raw value against the answers collected so far.
type ValidateFunc func(ctx context.Context, value any, answers Answers) (Validation, error)

// Step is a single question.
type Step struct {
	// Name is the answer key.
	Name string

	// Kind selects input or confirm.
	Kind Kind

	// Message is the question shown to the user.
	Message string

	// Default is used when the user supplies no value.
	Default any

	// Persist remembers the accepted value across runs.
	Persist bool

	// When skips the step when it returns false. The key stays absent.
	When func(Answers) bool

	// Validate, when set, decides whether the value is accepted.
	Validate ValidateFunc
}

// Confirm returns a confirm step.
func Confirm(name, message string, def bool) Step {
	return Step{Name: name, Kind: KindConfirm, Message: message, Default: def}
}

// Input returns an input step.
func Input(name, message, def string) Step {
	return Step{Name: name, Kind: KindInput, Message: message, Default: def}
}
