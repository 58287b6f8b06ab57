package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a theme file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatForPath picks the encoding from a file extension. Unknown
// extensions default to YAML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Parse decodes theme data in the given format.
func Parse(data []byte, format Format) (*Theme, error) {
	var t Theme
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("failed to parse toml theme: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("failed to parse yaml theme: %w", err)
		}
	}
	return &t, nil
}

// Load reads and decodes a theme file, picking the format from the file
// extension (.toml for TOML, anything else YAML).
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	return Parse(data, FormatForPath(path))
}
