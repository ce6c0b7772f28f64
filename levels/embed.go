package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

//go:embed *.txt
var levelsFS embed.FS

// Dir, when non-empty, is a directory checked before the embedded maps.
// The shell sets it in debug runs so edited maps load on restart.
var Dir string

// Load returns the text of an embedded level map by file name.
func Load(name string) (string, error) {
	if Dir != "" {
		if data, err := os.ReadFile(filepath.Join(Dir, name)); err == nil {
			return string(data), nil
		}
	}
	data, err := fs.ReadFile(levelsFS, name)
	if err != nil {
		return "", fmt.Errorf("read level: %w", err)
	}
	return string(data), nil
}

// Names lists the embedded level maps in lexical order.
func Names() []string {
	entries, err := fs.Glob(levelsFS, "*.txt")
	if err != nil {
		return nil
	}
	sort.Strings(entries)
	return entries
}
