package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for swiftfw configuration.
const envPrefix = "SWIFTFW"

// Loader handles loading and merging configuration from file and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("log.timestamps", "SWIFTFW_TIMESTAMPS")
	_ = v.BindEnv("answers.store", "SWIFTFW_ANSWERS_STORE")
	_ = v.BindEnv("answers.disabled", "SWIFTFW_NO_STORE")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, the default config file path is used.
// A missing file is not an error; environment variables override file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		configFile = GetConfigFile()
	}

	l.v.SetConfigFile(ResolvePath(configFile))
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	return cfg.WithDefaults(), nil
}

// UsedFile returns the config file viper attempted to read.
func (l *Loader) UsedFile() string {
	return l.v.ConfigFileUsed()
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		configFile = GetConfigFile()
	}

	_, err := os.Stat(ResolvePath(configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
