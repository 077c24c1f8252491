package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for workhours, stored in
// ~/.workhours/config.json. The file supports single-line // comments
// for documentation purposes.
type Config struct {
	// DatabasePath is the SQLite file holding the shift tables.
	// Empty = ~/.workhours/work_hours.sqlite.
	DatabasePath string `json:"database_path"`
}

// configTemplate is the annotated config written on first run. Lines
// whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// workhours configuration – ~/.workhours/config.json
//
// All settings are optional; the built-in defaults work out of the box.
{
  // Path to the SQLite database holding the shift tables.
  // Leave empty to use ~/.workhours/work_hours.sqlite.
  "database_path": ""
}
`

// BaseDir returns the root data directory (~/.workhours).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".workhours"), nil
}

// stripLineComments removes lines whose leading non-whitespace content
// starts with //. Only full-line comments are handled.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.workhours/config.json, creating it with the annotated
// template on first run, and fills in defaults for empty fields.
func Load() (Config, error) {
	base, err := BaseDir()
	if err != nil {
		return Config{}, err
	}
	path := filepath.Join(base, "config.json")

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
	case err != nil:
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := json.Unmarshal(stripLineComments(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
		}
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(base, "work_hours.sqlite")
	}
	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated
// default config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
