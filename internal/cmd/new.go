package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/swiftfw/cli/internal/cmdtypes"
	"github.com/swiftfw/cli/internal/cmdutil"
	"github.com/swiftfw/cli/internal/config"
	oerrors "github.com/swiftfw/cli/internal/errors"
	"github.com/swiftfw/cli/internal/output"
	"github.com/swiftfw/cli/internal/postinstall"
	"github.com/swiftfw/cli/internal/prompt"
	"github.com/swiftfw/cli/internal/templates"
)

const greeting = `Welcome to the Swift framework generator!

Answer a few questions and a new framework project is created for you.
`

// newOptions holds the flags of the new command.
type newOptions struct {
	templates   cmdutil.TemplateFlags
	skipInstall bool
	noOpen      bool
	defaults    bool
	force       bool
	noStore     bool
	answersFile string
}

// newDeps are the collaborators of the new command. Zero values select the
// real terminal, filesystem and process runner.
type newDeps struct {
	prompter prompt.Prompter
	runner   postinstall.Runner
	host     afero.Fs
}

// NewNewCmd creates the new command.
func NewNewCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newNewCmd(cfg, newDeps{})
}

func newNewCmd(cfg *cmdtypes.GlobalConfig, deps newDeps) *cobra.Command {
	var opts newOptions

	c := &cobra.Command{
		Use:   "new [dir]",
		Short: "Generate a new Swift framework project",
		Long: `Generate a new Swift framework project.

The generator asks for the project name, organization, GitHub user and which
integrations to include, then writes the project into dir (default:
./<project name>). Afterwards it bootstraps Carthage dependencies and opens
the Xcode project.

Answers for organization, organization identifier, GitHub user and certificate
path are remembered and offered as defaults next time.

Examples:
  # Generate interactively
  swiftfw new

  # Accept every default without prompting
  swiftfw new --defaults --skip-install --no-open

  # Answer from a file, prompting for anything missing
  swiftfw new --answers answers.yaml ./MyFramework`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c, args, cfg, &opts, deps)
		},
	}

	opts.templates.AddTo(c)
	c.Flags().BoolVar(&opts.skipInstall, "skip-install", false,
		"Skip the Carthage dependency bootstrap (env: SWIFTFW_SKIP_INSTALL)")
	c.Flags().BoolVar(&opts.noOpen, "no-open", false,
		"Do not open the generated project in Xcode")
	c.Flags().BoolVar(&opts.defaults, "defaults", false,
		"Accept default answers without prompting")
	c.Flags().StringVar(&opts.answersFile, "answers", "",
		"YAML file with preset answers")
	c.Flags().BoolVarP(&opts.force, "force", "f", false,
		"Generate into a non-empty directory, overwriting existing files")
	c.Flags().BoolVar(&opts.noStore, "no-store", false,
		"Neither read nor save remembered answers")

	return c
}

func runNew(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, opts *newOptions, deps newDeps) error {
	ctx := c.Context()
	conf := cfg.ConfigOrDefault()

	if deps.host == nil {
		deps.host = afero.NewOsFs()
	}

	tree, catalog, err := opts.templates.Load()
	if err != nil {
		return cmdutil.PrintError("loading templates failed", err)
	}

	initial, err := loadAnswersFile(opts.answersFile)
	if err != nil {
		return cmdutil.PrintError("reading answers failed", err)
	}

	prompter := deps.prompter
	if prompter == nil {
		prompter = choosePrompter(c, opts.defaults)
	}
	if _, scripted := prompter.(*prompt.Scripted); scripted && !initial.Has(templates.AnswerAskCertPathAgain) {
		initial[templates.AnswerAskCertPathAgain] = false
	}

	var store prompt.Store
	if opts.noStore || conf.Answers.Disabled {
		store = prompt.NewMemoryStore(nil)
	} else {
		store = prompt.NewFileStore(config.ResolvePath(conf.Answers.Store))
	}

	fmt.Fprintln(c.OutOrStdout(), output.StyleNoun.Render(greeting))

	answers, err := prompt.NewSession(prompter, store).Run(ctx, templates.Questions(deps.host), initial)
	if err != nil {
		if errors.Is(err, oerrors.ErrAborted) {
			return cmdutil.PrintError("generation aborted", oerrors.NewExitError(err, oerrors.ExitAborted))
		}
		return cmdutil.PrintError("prompting failed", err)
	}

	var skipFlag, openFlag *bool
	if c.Flags().Changed("skip-install") {
		skipFlag = output.BoolPtr(opts.skipInstall)
	}
	if c.Flags().Changed("no-open") {
		openFlag = output.BoolPtr(!opts.noOpen)
	}
	settings := config.ResolveGenerate(config.ResolveGenerateOptions{
		SkipInstallFlag: skipFlag,
		OpenXcodeFlag:   openFlag,
		Config:          cfg.Config,
	})

	run := templates.NewRun(answers, settings.SkipInstall.Value)

	targetDir := filepath.Join(".", run.ProjectName())
	if len(args) > 0 {
		targetDir = args[0]
	}

	result, err := templates.NewGenerator(templates.GenerateOptions{
		TargetDir: targetDir,
		Force:     opts.force,
		Catalog:   catalog,
		Templates: tree,
		Host:      deps.host,
	}).Generate(run)
	if err != nil {
		if result != nil && len(result.Files) > 0 {
			output.Warn("generation stopped; files already written were kept",
				"written", len(result.Files), "target", targetDir)
		}
		if !errors.Is(err, oerrors.ErrValidation) {
			err = oerrors.NewExitError(err, oerrors.ExitGeneralError)
		}
		return cmdutil.PrintError("generation failed", err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.RenderFileTree(result.TargetDir, result.Files, result.Statuses))
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(
		fmt.Sprintf("Project %s created in %s", result.ProjectName, result.TargetDir)))

	if _, err := postinstall.NewActions(deps.runner).Run(ctx, postinstall.Options{
		Dir:              targetDir,
		ProjectName:      result.ProjectName,
		SkipInstall:      settings.SkipInstall.Value,
		OpenXcode:        settings.OpenXcode.Value,
		BootstrapCommand: settings.BootstrapCommand,
		OpenCommand:      settings.OpenCommand,
	}); err != nil {
		return cmdutil.PrintError("post-generation steps interrupted", oerrors.NewExitError(err, oerrors.ExitAborted))
	}

	return nil
}

// choosePrompter returns a huh prompter on a terminal, a line prompter for
// piped input, and scripted defaults for --defaults.
func choosePrompter(c *cobra.Command, defaults bool) prompt.Prompter {
	switch {
	case defaults:
		return prompt.NewScripted(nil)
	case c.InOrStdin() == os.Stdin && output.IsInteractive():
		return prompt.NewTerminalPrompter()
	default:
		return prompt.NewLinePrompter(c.InOrStdin(), c.OutOrStdout())
	}
}

// loadAnswersFile reads preset answers from a YAML mapping. An empty path
// yields no presets.
func loadAnswersFile(path string) (prompt.Answers, error) {
	answers := prompt.Answers{}
	if path == "" {
		return answers, nil
	}

	resolved := config.ResolvePath(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("answers file not found", resolved, "Pass an existing YAML file to --answers.")
		}
		return nil, fmt.Errorf("reading answers file: %w", err)
	}

	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("answers file is not a YAML mapping: %v", err), resolved, "",
			"Write one `name: value` line per answer, e.g. `projectName: MyFramework`.")
	}
	if answers == nil {
		answers = prompt.Answers{}
	}
	return answers, nil
}
