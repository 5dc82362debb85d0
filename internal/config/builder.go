package config

import "fmt"

// Builder constructs a Config by layering overrides on top of defaults.
type Builder struct {
	overrides []*Config
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add adds a configuration override. Overrides are applied in order:
// later overrides take precedence over earlier ones.
func (b *Builder) Add(override *Config) *Builder {
	if override != nil {
		b.overrides = append(b.overrides, override)
	}
	return b
}

// Build constructs the final configuration by starting with defaults,
// applying all overrides, filling the changelog path, and validating.
func (b *Builder) Build() (*Config, error) {
	cfg := CreateDefaultConfiguration()

	for _, override := range b.overrides {
		mergeConfig(cfg, override)
	}

	if cfg.ChangelogPath == nil || *cfg.ChangelogPath == "" {
		cfg.ChangelogPath = stringPtr(DefaultChangelogPath)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig applies non-nil fields from src to dst.
func mergeConfig(dst, src *Config) {
	if src.ChangelogDateFormat != nil {
		dst.ChangelogDateFormat = src.ChangelogDateFormat
	}
	if src.ChangelogPath != nil {
		dst.ChangelogPath = src.ChangelogPath
	}
	if src.BumpAfterRelease != nil {
		dst.BumpAfterRelease = src.BumpAfterRelease
	}
	if src.CommitChanges != nil {
		dst.CommitChanges = src.CommitChanges
	}
	if src.Tag != nil {
		dst.Tag = src.Tag
	}
	if src.GitHubRelease != nil {
		dst.GitHubRelease = src.GitHubRelease
	}
}

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	if f := cfg.ChangelogDateFormat; f != nil && (*f < DateFormatAuto || *f > DateFormatShort) {
		return fmt.Errorf("%w: changelog date format %d out of range", ErrInvalidConfig, int(*f))
	}
	if derefBool(cfg.GitHubRelease, false) && !derefBool(cfg.Tag, false) {
		return fmt.Errorf("%w: github_release requires tag to be enabled", ErrInvalidConfig)
	}
	return nil
}
