package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether both stdin and stdout are terminals, which is
// required for interactive prompts.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && IsTTY()
}

// IsStdinTTY reports whether stdin is attached to a terminal.
func IsStdinTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
