package release

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/MyCarrier-DevOps/go-kraken/internal/changelog"
	"github.com/MyCarrier-DevOps/go-kraken/internal/config"
	"github.com/MyCarrier-DevOps/go-kraken/internal/executor"
	"github.com/MyCarrier-DevOps/go-kraken/internal/uv"
)

// Publisher publishes release notes for a pushed tag on a hosting service.
// It returns a URL for the published release.
type Publisher interface {
	Publish(ctx context.Context, tag, notes string) (string, error)
}

// Workflow performs a complete release of the project in Dir.
type Workflow struct {
	Dir    string
	Config *config.Effective
	Exec   executor.Executor
	UV     *uv.Tool

	// Publisher is used when Config.GitHubRelease is set.
	Publisher Publisher

	// Now returns the release date. Defaults to time.Now.
	Now func() time.Time
}

// Result summarizes what a successful Run did.
type Result struct {
	Version       string
	Committed     bool
	Tag           string
	ReleaseURL    string
	BumpedVersion string
}

// Run releases version: it dates the changelog, sets the package version and,
// as configured, commits, tags, publishes and bumps to the next pre-release.
func (w *Workflow) Run(ctx context.Context, version string) (*Result, error) {
	res := &Result{Version: version}
	cfg := w.Config

	if err := changelog.Update(cfg.ChangelogPath, version, cfg.ChangelogDateFormat, w.now()); err != nil {
		return nil, err
	}
	slog.Info("changelog updated", "path", cfg.ChangelogPath, "version", version)

	if err := w.UV.SetVersion(ctx, version); err != nil {
		return nil, err
	}
	slog.Info("package version updated", "version", version)

	if !cfg.CommitChanges {
		return res, nil
	}

	files := w.releaseFiles()
	if err := RunSteps(ctx, w.Exec, CommitSteps(files, "Release "+version)); err != nil {
		return nil, err
	}
	res.Committed = true

	if cfg.Tag {
		tag, err := w.UV.PackageVersion(ctx)
		if err != nil {
			return nil, err
		}
		if err := RunSteps(ctx, w.Exec, TagSteps(tag)); err != nil {
			return nil, err
		}
		res.Tag = tag
		slog.Info("tag pushed", "tag", tag)

		if cfg.GitHubRelease {
			url, err := w.publish(ctx, version, tag)
			if err != nil {
				return nil, err
			}
			res.ReleaseURL = url
		}
	}

	if cfg.BumpAfterRelease {
		if err := w.UV.BumpPreRelease(ctx); err != nil {
			return nil, err
		}
		next, err := w.UV.PackageVersion(ctx)
		if err != nil {
			return nil, err
		}
		if err := RunSteps(ctx, w.Exec, CommitSteps(files, "Bump version to "+next)); err != nil {
			return nil, err
		}
		res.BumpedVersion = next
	}

	return res, nil
}

// releaseFiles returns the files every release commit stages, relative to
// the project directory where possible.
func (w *Workflow) releaseFiles() []string {
	changelogPath := w.Config.ChangelogPath
	if rel, err := filepath.Rel(w.Dir, changelogPath); err == nil && filepath.IsLocal(rel) {
		changelogPath = rel
	}
	return []string{config.PyProjectFile, changelogPath, uv.LockFile}
}

func (w *Workflow) publish(ctx context.Context, version, tag string) (string, error) {
	if w.Publisher == nil {
		return "", errors.New("github release requested but no publisher is configured")
	}

	data, err := os.ReadFile(w.Config.ChangelogPath)
	if err != nil {
		return "", fmt.Errorf("reading release notes: %w", err)
	}
	notes, ok := changelog.ExtractSection(string(data), version)
	if !ok {
		notes, _ = changelog.ExtractSection(string(data), tag)
	}

	url, err := w.Publisher.Publish(ctx, tag, notes)
	if err != nil {
		return "", fmt.Errorf("failed to publish release %s: %w", tag, err)
	}
	slog.Info("release published", "tag", tag, "url", url)
	return url, nil
}

func (w *Workflow) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}
