package config

import (
	"fmt"
	"log/slog"
)

// Load resolves the configuration for the project in dir. Layers apply in
// increasing precedence: defaults, the kraken table of pyproject.toml, the
// YAML config file and cli. configPath names the YAML file; when empty, the
// first of the known config file names present in dir is used.
func Load(dir, configPath string, cli *Config) (*Effective, *PyProject, error) {
	project, err := LoadPyProject(dir)
	if err != nil {
		return nil, nil, err
	}

	builder := NewBuilder().Add(project.Settings())

	if configPath == "" {
		configPath = FindConfigFile(dir)
	}
	if configPath != "" {
		fileCfg, err := LoadFromFile(configPath)
		if err != nil {
			return nil, nil, err
		}
		slog.Debug("config file loaded", "path", configPath)
		builder.Add(fileCfg)
	}

	cfg, err := builder.Add(cli).Build()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	eff, err := Resolve(cfg, dir)
	if err != nil {
		return nil, nil, err
	}
	return eff, project, nil
}
