package config

import (
	"fmt"
	"path/filepath"

	"github.com/MyCarrier-DevOps/go-kraken/internal/changelog"
)

// Effective is a fully resolved configuration with all fields guaranteed to
// have values. Its date format is always concrete; Auto cannot be represented.
type Effective struct {
	ChangelogDateFormat changelog.DateFormat `yaml:"changelog_date_format"`
	ChangelogPath       string               `yaml:"changelog_path"`
	BumpAfterRelease    bool                 `yaml:"bump_after_release"`
	CommitChanges       bool                 `yaml:"commit_changes"`
	Tag                 bool                 `yaml:"tag"`
	GitHubRelease       bool                 `yaml:"github_release"`
}

// Resolve turns a built Config into an Effective configuration for the
// project rooted at dir. A relative changelog path is taken relative to dir.
// When the requested date format is auto, the changelog is inspected and a
// failure to detect its notation fails resolution.
func Resolve(cfg *Config, dir string) (*Effective, error) {
	path := derefString(cfg.ChangelogPath, DefaultChangelogPath)
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	requested := DateFormatAuto
	if cfg.ChangelogDateFormat != nil {
		requested = *cfg.ChangelogDateFormat
	}

	format, err := resolveDateFormat(requested, path)
	if err != nil {
		return nil, err
	}

	return &Effective{
		ChangelogDateFormat: format,
		ChangelogPath:       path,
		BumpAfterRelease:    derefBool(cfg.BumpAfterRelease, true),
		CommitChanges:       derefBool(cfg.CommitChanges, true),
		Tag:                 derefBool(cfg.Tag, false),
		GitHubRelease:       derefBool(cfg.GitHubRelease, false),
	}, nil
}

func resolveDateFormat(requested DateFormat, changelogPath string) (changelog.DateFormat, error) {
	switch requested {
	case DateFormatLong:
		return changelog.DateFormatLong, nil
	case DateFormatShort:
		return changelog.DateFormatShort, nil
	case DateFormatAuto:
		format, err := changelog.Detect(changelogPath)
		if err != nil {
			return 0, fmt.Errorf("detecting changelog date format: %w", err)
		}
		return format, nil
	default:
		return 0, changelog.ErrUnsupportedDateFormat
	}
}
