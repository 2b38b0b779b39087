package postinstall

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/swiftfw/cli/internal/output"
)

// SkipInstallMessage is logged when the dependency bootstrap is skipped.
const SkipInstallMessage = "Please run `carthage bootstrap`"

// Options configures the post-generation actions.
type Options struct {
	// Dir is the generated project directory.
	Dir string

	// ProjectName names the Xcode project to open.
	ProjectName string

	// SkipInstall skips the dependency bootstrap.
	SkipInstall bool

	// OpenXcode opens the generated project.
	OpenXcode bool

	// BootstrapCommand is the bootstrap command line, e.g. make bootstrap deps.
	BootstrapCommand []string

	// OpenCommand opens a path with the default application.
	OpenCommand string
}

// Result reports what the post-generation actions did.
type Result struct {
	Bootstrapped bool
	Opened       bool

	// Warnings collects failures that did not abort generation.
	Warnings []error
}

// Actions runs post-generation commands through a Runner.
type Actions struct {
	runner  Runner
	spinner func(ctx context.Context, title string, action func(context.Context) error) error
}

// NewActions creates actions backed by runner. A nil runner uses ExecRunner.
func NewActions(runner Runner) *Actions {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Actions{
		runner: runner,
		spinner: func(ctx context.Context, title string, action func(context.Context) error) error {
			return output.RunWithSpinner(ctx, action, output.WithTitle(title))
		},
	}
}

// Run bootstraps dependencies and opens the project, in that order.
// Command failures are logged as warnings and never returned; only context
// cancellation is reported as an error.
func (a *Actions) Run(ctx context.Context, opts Options) (*Result, error) {
	result := &Result{}
	log := output.ProjectLogger(opts.ProjectName)

	if opts.SkipInstall {
		log.Info(SkipInstallMessage)
	} else if len(opts.BootstrapCommand) > 0 {
		err := a.spinner(ctx, "Carthage bootstrapping", func(ctx context.Context) error {
			return a.runner.Run(ctx, opts.Dir, opts.BootstrapCommand[0], opts.BootstrapCommand[1:]...)
		})
		switch {
		case err == nil:
			result.Bootstrapped = true
			log.Info("dependencies bootstrapped", "command", strings.Join(opts.BootstrapCommand, " "))
		case errors.Is(err, context.Canceled):
			return result, err
		default:
			result.Warnings = append(result.Warnings, err)
			log.Warn("dependency bootstrap failed", "error", err)
			var cmdErr *CommandError
			if errors.As(err, &cmdErr) && cmdErr.Output != "" {
				output.Debug("bootstrap output", "output", strings.TrimSpace(cmdErr.Output))
			}
		}
	}

	if opts.OpenXcode && opts.OpenCommand != "" {
		// The runner executes inside Dir, so the project is named relative to it.
		project := opts.ProjectName + ".xcodeproj"
		if err := a.runner.Run(ctx, opts.Dir, opts.OpenCommand, project); err != nil {
			if errors.Is(err, context.Canceled) {
				return result, err
			}
			result.Warnings = append(result.Warnings, err)
			log.Warn("could not open project", "path", filepath.Join(opts.Dir, project), "error", err)
		} else {
			result.Opened = true
		}
	}

	return result, nil
}
