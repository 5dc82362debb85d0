// Package config provides configuration loading, layering and resolution for
// kraken. Settings come from built-in defaults, the project's pyproject.toml,
// an optional YAML file and command-line overrides, in increasing precedence.
package config

import "errors"

// ErrInvalidConfig marks malformed or inconsistent configuration.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultChangelogPath is used when no layer names a changelog file.
const DefaultChangelogPath = "CHANGELOG.md"

// Config is one configuration layer. All fields are pointers so that a layer
// only overrides the settings it actually carries.
type Config struct {
	ChangelogDateFormat *DateFormat `toml:"changelog_date_format" yaml:"changelog_date_format"`
	ChangelogPath       *string     `toml:"changelog_path" yaml:"changelog_path"`
	BumpAfterRelease    *bool       `toml:"bump_after_release" yaml:"bump_after_release"`
	CommitChanges       *bool       `toml:"commit_changes" yaml:"commit_changes"`
	Tag                 *bool       `toml:"tag" yaml:"tag"`
	GitHubRelease       *bool       `toml:"github_release" yaml:"github_release"`
}

// Tristate collapses a pair of mutually exclusive boolean flags into an
// override: the negative flag forces false, the positive flag forces true,
// and neither leaves the lower layers untouched.
func Tristate(positive, negative bool) *bool {
	switch {
	case negative:
		return boolPtr(false)
	case positive:
		return boolPtr(true)
	default:
		return nil
	}
}
