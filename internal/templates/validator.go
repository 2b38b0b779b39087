package templates

import (
	"fmt"
	"unicode"
)

// ValidateProjectName checks that name can be used as a file name, an Xcode
// target name and a Swift module name.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return fmt.Errorf("invalid project name %q: contains invalid character %q", name, r)
		}
	}

	if !unicode.IsLetter([]rune(name)[0]) {
		return fmt.Errorf("invalid project name %q: must start with a letter", name)
	}

	if ContainsLeak(name) {
		return fmt.Errorf("invalid project name %q: must not contain template placeholders", name)
	}

	return nil
}
