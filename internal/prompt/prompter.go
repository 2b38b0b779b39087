package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	oerrors "github.com/swiftfw/cli/internal/errors"
)

// Prompter asks a single step and returns its raw value.
// def is the effective default (step default or persisted value).
type Prompter interface {
	Ask(ctx context.Context, step Step, def any) (any, error)
}

// LinePrompter reads answers line by line from a reader.
// An empty line selects the default.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a line-oriented prompter.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask implements Prompter.
func (p *LinePrompter) Ask(ctx context.Context, step Step, def any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch step.Kind {
	case KindConfirm:
		d, _ := def.(bool)
		hint := "[y/N]"
		if d {
			hint = "[Y/n]"
		}
		for {
			fmt.Fprintf(p.out, "? %s %s ", step.Message, hint)
			line, err := p.readLine()
			if err != nil {
				return nil, err
			}
			switch strings.ToLower(line) {
			case "":
				return d, nil
			case "y", "yes":
				return true, nil
			case "n", "no":
				return false, nil
			}
			fmt.Fprintln(p.out, "Please answer y or n.")
		}
	default:
		d := defaultString(def)
		if d != "" {
			fmt.Fprintf(p.out, "? %s (%s) ", step.Message, d)
		} else {
			fmt.Fprintf(p.out, "? %s ", step.Message)
		}
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return d, nil
		}
		return line, nil
	}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", fmt.Errorf("%w: input closed", oerrors.ErrAborted)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Scripted answers steps from preset values, falling back to defaults.
// An unscripted confirm step answers its default once and false after that,
// so retry loops always terminate when running unattended.
type Scripted struct {
	mu        sync.Mutex
	answers   map[string][]any
	asked     []string
	defaulted map[string]bool
}

// NewScripted creates a scripted prompter. Each name maps to the values
// returned on successive asks of that step.
func NewScripted(answers map[string][]any) *Scripted {
	cp := make(map[string][]any, len(answers))
	for k, v := range answers {
		cp[k] = append([]any(nil), v...)
	}
	return &Scripted{answers: cp, defaulted: make(map[string]bool)}
}

// Ask implements Prompter.
func (s *Scripted) Ask(ctx context.Context, step Step, def any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.asked = append(s.asked, step.Name)

	if queue := s.answers[step.Name]; len(queue) > 0 {
		s.answers[step.Name] = queue[1:]
		return queue[0], nil
	}

	if step.Kind == KindConfirm {
		if s.defaulted[step.Name] {
			return false, nil
		}
		s.defaulted[step.Name] = true
		b, _ := def.(bool)
		return b, nil
	}
	return defaultString(def), nil
}

// Asked returns the step names asked so far, in order.
func (s *Scripted) Asked() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.asked...)
}

func defaultString(def any) string {
	switch v := def.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
