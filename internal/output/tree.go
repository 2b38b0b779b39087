package output

import (
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
)

// RenderFileTree renders generated files under rootName in the order they
// were written. Directories appear where their first file was written, and
// each file carries its status from statuses when present.
func RenderFileTree(rootName string, files []string, statuses map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	styles := GetStyles()
	root := tree.Root(strings.TrimSuffix(rootName, "/") + "/").
		RootStyle(styles.Bold).
		EnumeratorStyle(styles.Muted)

	dirs := map[string]*tree.Tree{"": root}
	for _, file := range files {
		file = path.Clean(strings.ReplaceAll(file, "\\", "/"))
		parent := ensureDir(dirs, path.Dir(file))
		parent.Child(fileLabel(path.Base(file), statuses[file]))
	}

	return root.String()
}

// ensureDir returns the subtree for dir, creating it and its parents.
func ensureDir(dirs map[string]*tree.Tree, dir string) *tree.Tree {
	if dir == "." {
		dir = ""
	}
	if t, ok := dirs[dir]; ok {
		return t
	}
	parent := ensureDir(dirs, path.Dir(dir))
	t := tree.Root(path.Base(dir) + "/")
	parent.Child(t)
	dirs[dir] = t
	return t
}

func fileLabel(name, status string) string {
	if status == "" {
		return name
	}
	return name + "  " + StatusStyle(status).Render(status)
}
