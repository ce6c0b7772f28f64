package prefabs

import (
	"embed"
	"os"
	"path/filepath"
)

//go:embed *.yaml
var prefabsFS embed.FS

// Dir, when non-empty, is a directory checked before the embedded files.
// The shell sets it in debug runs so edited specs take effect on reload.
var Dir string

// Load returns the raw bytes of a prefab file by base name.
func Load(filename string) ([]byte, error) {
	if Dir != "" {
		if data, err := os.ReadFile(filepath.Join(Dir, filename)); err == nil {
			return data, nil
		}
	}
	return prefabsFS.ReadFile(filename)
}
