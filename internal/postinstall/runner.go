// Package postinstall runs the external commands that follow generation:
// dependency bootstrap and opening the project in Xcode.
package postinstall

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/swiftfw/cli/internal/output"
)

// Runner runs an external command in dir and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// CommandError is returned when a command exits unsuccessfully.
type CommandError struct {
	Command string
	Output  string
	Err     error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Run implements Runner. Combined output is captured and logged at debug level.
// A command stopped by ctx reports the context error instead of the kill signal.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	line := strings.Join(append([]string{name}, args...), " ")
	output.Debug("running command", "command", line, "dir", dir)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", line, ctxErr)
		}
		return &CommandError{Command: line, Output: buf.String(), Err: err}
	}

	output.Debug("command finished", "command", line, "output", strings.TrimSpace(buf.String()))
	return nil
}
