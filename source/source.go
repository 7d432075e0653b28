// Package source loads shortcut modes from a file, picking the reader by
// extension.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/markovic-nikola/keyhint/db"
	"github.com/markovic-nikola/keyhint/keymap"
	"github.com/markovic-nikola/keyhint/shortcut"
)

// ErrUnsupported is returned for files that are neither YAML keymaps nor
// SQLite databases.
var ErrUnsupported = errors.New("unsupported shortcut source")

type kind int

const (
	kindNone kind = iota
	kindYAML
	kindSQLite
)

var extensions = map[string]kind{
	".yaml":    kindYAML,
	".yml":     kindYAML,
	".db":      kindSQLite,
	".sqlite":  kindSQLite,
	".sqlite3": kindSQLite,
}

func kindOf(path string) kind {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// IsSupported reports whether Load knows how to read path.
func IsSupported(path string) bool {
	return kindOf(path) != kindNone
}

// Load reads all modes stored at path.
func Load(path string) ([]shortcut.Mode, error) {
	switch kindOf(path) {
	case kindYAML:
		modes, err := keymap.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		return modes, nil

	case kindSQLite:
		// sql.Open would happily create an empty file; refuse instead.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		database, err := db.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer database.Close()

		modes, err := db.LoadModes(database)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		return modes, nil
	}

	return nil, fmt.Errorf("%w: %q (expected .yaml, .yml, .db, .sqlite or .sqlite3)", ErrUnsupported, filepath.Ext(path))
}

// Validate checks that path points to an existing regular file Load can read.
func Validate(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !IsSupported(path) {
		return fmt.Errorf("%w: %q", ErrUnsupported, filepath.Ext(path))
	}
	return nil
}

// Find returns the supported files in dir, in directory order.
func Find(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if IsSupported(e.Name()) {
			files = append(files, e.Name())
		}
	}
	return files
}
