package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// PyProjectFile is the manifest of a uv-managed project.
const PyProjectFile = "pyproject.toml"

// configFileNames lists the YAML files searched for configuration in order.
var configFileNames = []string{
	".kraken.yml",
	".kraken.yaml",
	"kraken.yml",
	"kraken.yaml",
}

// PyProject is the subset of pyproject.toml that kraken reads.
type PyProject struct {
	Project Project `toml:"project"`
	Tool    struct {
		Kraken *Config `toml:"kraken"`
	} `toml:"tool"`
	// Kraken is the legacy top-level [kraken] table.
	Kraken *Config `toml:"kraken"`
}

// Project is the [project] table of pyproject.toml.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Settings returns the kraken layer, preferring [tool.kraken] over the
// legacy [kraken] table. Returns nil when neither table exists.
func (p *PyProject) Settings() *Config {
	if p.Tool.Kraken != nil {
		return p.Tool.Kraken
	}
	return p.Kraken
}

// LoadPyProject reads and parses the pyproject.toml in dir.
func LoadPyProject(dir string) (*PyProject, error) {
	path := filepath.Join(dir, PyProjectFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", PyProjectFile, err)
	}
	return ParsePyProject(data)
}

// ParsePyProject parses pyproject.toml content. The [project] table must
// carry a name and a version.
func ParsePyProject(data []byte) (*PyProject, error) {
	var p PyProject
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidConfig, PyProjectFile, err)
	}
	if p.Project.Name == "" {
		return nil, fmt.Errorf("%w: %s has no project.name", ErrInvalidConfig, PyProjectFile)
	}
	if p.Project.Version == "" {
		return nil, fmt.Errorf("%w: %s has no static project.version", ErrInvalidConfig, PyProjectFile)
	}
	return &p, nil
}

// LoadFromFile reads and parses a kraken YAML configuration file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses kraken configuration from raw YAML bytes.
// Unknown keys are rejected.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parsing config: %w", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// FindConfigFile searches dir for a kraken YAML file and returns its path,
// or "" if there is none.
func FindConfigFile(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
