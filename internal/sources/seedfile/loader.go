package seedfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of the bootstrap YAML file.
type Loader struct {
	filePath string
}

// NewLoader creates a new seed loader.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the seed file.
func (l *Loader) Load() (Seed, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return Seed{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	return seed, nil
}
