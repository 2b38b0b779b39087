package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// appDirName is the directory under the XDG config home holding swiftfw files.
const appDirName = "swiftfw"

// Paths contains standard filesystem paths for swiftfw.
type Paths struct {
	// ConfigDir is the swiftfw config directory ($XDG_CONFIG_HOME/swiftfw).
	ConfigDir string

	// ConfigFile is the path to the config file.
	ConfigFile string

	// AnswersFile is the path to the persisted prompt answers.
	AnswersFile string
}

// DefaultPaths returns the default paths for swiftfw.
func DefaultPaths() *Paths {
	dir := filepath.Join(xdg.ConfigHome, appDirName)

	return &Paths{
		ConfigDir:   dir,
		ConfigFile:  filepath.Join(dir, "config.yaml"),
		AnswersFile: filepath.Join(dir, "answers.yaml"),
	}
}

// GetConfigFile returns the config file path.
// If SWIFTFW_CONFIG is set, it takes precedence.
func GetConfigFile() string {
	if envPath := os.Getenv("SWIFTFW_CONFIG"); envPath != "" {
		return envPath
	}
	return DefaultPaths().ConfigFile
}

// ResolvePath expands a leading "~" to the user's home directory and makes the
// result absolute against the working directory. Nothing is read from disk and
// the returned path need not exist.
func ResolvePath(input string) string {
	if strings.HasPrefix(input, "~") {
		input = xdg.Home + input[1:]
	}

	abs, err := filepath.Abs(input)
	if err != nil {
		return filepath.Clean(input)
	}
	return abs
}
