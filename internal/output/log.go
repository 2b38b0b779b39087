// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	ReportCaller:    false,
})

// stdout is where user-facing (non-log) output is written.
var stdout io.Writer = os.Stdout

// stderr receives log lines and error details.
var stderr io.Writer = os.Stderr

// LogConfig controls logger construction.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and forces timestamps on.
	Verbose bool

	// Timestamps toggles timestamps. nil means the default (on).
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// Logger returns the global logger.
func Logger() *log.Logger {
	return logger
}

// ProjectLogger returns a child logger prefixed with the project name.
func ProjectLogger(projectName string) *log.Logger {
	child := logger.With()
	child.SetPrefix(StyleNoun.Render("p:" + projectName))
	return child
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	_, _ = io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	_, _ = io.WriteString(stdout, msg+"\n")
}

// Prompt prints a prompt to stdout without a trailing newline.
func Prompt(msg string) {
	Print(msg)
}

// SetOutput redirects user-facing output and returns a restore function.
func SetOutput(w io.Writer) func() {
	prev := stdout
	stdout = w
	return func() { stdout = prev }
}

// Details prints multi-line error details to stderr verbatim.
func Details(msg string) {
	_, _ = io.WriteString(stderr, strings.TrimRight(msg, "\n")+"\n")
}

// SetErrOutput redirects log and detail output and returns a restore function.
func SetErrOutput(w io.Writer) func() {
	prev := stderr
	stderr = w
	logger.SetOutput(w)
	return func() {
		stderr = prev
		logger.SetOutput(prev)
	}
}
