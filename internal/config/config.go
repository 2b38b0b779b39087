// Package config provides configuration loading, validation and path
// resolution for the swiftfw CLI.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// GenerateConfig contains defaults for `swiftfw new`.
type GenerateConfig struct {
	// SkipInstall skips the dependency bootstrap after generation.
	// Env: SWIFTFW_SKIP_INSTALL
	SkipInstall bool `mapstructure:"skipInstall" yaml:"skipInstall" json:"skipInstall,omitempty"`

	// OpenXcode opens the generated project after generation. nil means true.
	// Env: SWIFTFW_OPEN_XCODE
	OpenXcode *bool `mapstructure:"openXcode" yaml:"openXcode,omitempty" json:"openXcode,omitempty"`

	// BootstrapCommand is the dependency bootstrap command, run in the project directory.
	BootstrapCommand []string `mapstructure:"bootstrapCommand" yaml:"bootstrapCommand,omitempty" json:"bootstrapCommand,omitempty"`

	// OpenCommand opens the generated Xcode project.
	OpenCommand string `mapstructure:"openCommand" yaml:"openCommand,omitempty" json:"openCommand,omitempty"`
}

// AnswersConfig controls the persisted prompt answers.
type AnswersConfig struct {
	// Store is the path of the answers file. Env: SWIFTFW_ANSWERS_STORE
	Store string `mapstructure:"store" yaml:"store,omitempty" json:"store,omitempty"`

	// Disabled turns off reading and writing persisted answers.
	Disabled bool `mapstructure:"disabled" yaml:"disabled" json:"disabled,omitempty"`
}

// Config represents the swiftfw CLI configuration, loaded from
// $XDG_CONFIG_HOME/swiftfw/config.yaml and validated against the embedded CUE schema.
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log" json:"log"`
	Generate GenerateConfig `mapstructure:"generate" yaml:"generate" json:"generate"`
	Answers  AnswersConfig  `mapstructure:"answers" yaml:"answers" json:"answers"`
}

// Default values.
var (
	// DefaultBootstrapCommand fetches Carthage dependencies through the generated Makefile.
	DefaultBootstrapCommand = []string{"make", "bootstrap", "deps"}

	// DefaultOpenCommand is the macOS opener used to launch Xcode.
	DefaultOpenCommand = "open"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `swiftfw config init` to generate the initial config file.
func DefaultConfig() *Config {
	openXcode := true
	timestamps := true

	return &Config{
		Log: LogConfig{
			Timestamps: &timestamps,
		},
		Generate: GenerateConfig{
			OpenXcode:        &openXcode,
			BootstrapCommand: append([]string(nil), DefaultBootstrapCommand...),
			OpenCommand:      DefaultOpenCommand,
		},
		Answers: AnswersConfig{
			Store: DefaultPaths().AnswersFile,
		},
	}
}

// WithDefaults returns a copy of c with unset fields filled from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()

	if out.Log.Timestamps == nil {
		out.Log.Timestamps = def.Log.Timestamps
	}
	if out.Generate.OpenXcode == nil {
		out.Generate.OpenXcode = def.Generate.OpenXcode
	}
	if len(out.Generate.BootstrapCommand) == 0 {
		out.Generate.BootstrapCommand = def.Generate.BootstrapCommand
	}
	if out.Generate.OpenCommand == "" {
		out.Generate.OpenCommand = def.Generate.OpenCommand
	}
	if out.Answers.Store == "" {
		out.Answers.Store = def.Answers.Store
	}

	return &out
}
