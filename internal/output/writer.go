package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes content to path, creating parent directories. A missing
// final newline is added.
func WriteFile(path, content string) error {
	err := os.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if content != "" && content[len(content)-1] != '\n' {
		content += "\n"
	}

	err = os.WriteFile(path, []byte(content), filePerm)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}

// UnitFileName returns the Quadlet file name for a unit, e.g. "web.container".
func UnitFileName(name, kind string) string {
	return name + "." + kind
}
