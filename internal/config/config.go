package config

import (
	"os"
	"path/filepath"
)

const AppName = "bullet"

// themeFileNames lists the theme files searched for in the data
// directory, in order of preference.
var themeFileNames = []string{"theme.yaml", "theme.yml", "theme.toml"}

// DataDir returns the path to the bullet data directory (~/.bullet/)
// Creates the directory if it doesn't exist
// Can be overridden with BULLET_DATA_DIR environment variable (primarily for testing)
func DataDir() (string, error) {
	// Check for test override
	if dataDir := os.Getenv("BULLET_DATA_DIR"); dataDir != "" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return "", err
		}
		return dataDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(home, "."+AppName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// ThemePath returns the theme file to load: the BULLET_THEME override if
// set, otherwise the first of theme.yaml, theme.yml, theme.toml found in
// the data directory. An empty path with nil error means no theme is
// configured and built-in defaults apply.
func ThemePath() (string, error) {
	if path := os.Getenv("BULLET_THEME"); path != "" {
		return path, nil
	}

	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	for _, name := range themeFileNames {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", nil
}
