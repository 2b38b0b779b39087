// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/swiftfw/cli/internal/cmd/config"
	templatecmd "github.com/swiftfw/cli/internal/cmd/template"
	"github.com/swiftfw/cli/internal/cmdtypes"
	"github.com/swiftfw/cli/internal/config"
	"github.com/swiftfw/cli/internal/output"
	"github.com/swiftfw/cli/internal/version"
)

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the swiftfw CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "swiftfw",
		Short: "Swift framework project generator",
		Long: `swiftfw scaffolds a ready-to-build Swift framework project.

It asks a few questions and generates an Xcode project with an example app,
unit tests, Carthage support, and optional CocoaPods, Travis CI and GitLab CI
configuration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, &flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Path to config file (env: SWIFTFW_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewNewCmd(cfg))
	rootCmd.AddCommand(templatecmd.NewTemplateCmd(cfg))
	rootCmd.AddCommand(configcmd.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	resolved := config.ResolveConfigPath(flags.config)
	cfg.ConfigPath = config.ResolvePath(resolved.ConfigPath)
	cfg.ConfigSource = resolved.Source
	cfg.Verbose = flags.verbose

	loaded, loadErr := config.NewLoader().LoadWithDefaults(cfg.ConfigPath)
	if loadErr != nil {
		// Commands like `config vet` must still run against a broken file.
		loaded = config.DefaultConfig()
	}
	cfg.Config = loaded

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring unreadable config file", "path", cfg.ConfigPath, "error", loadErr)
	}

	info := version.GetInfo()
	output.Debug("swiftfw started",
		"version", info.Version,
		"config", cfg.ConfigPath,
		"configSource", cfg.ConfigSource,
	)

	return nil
}
