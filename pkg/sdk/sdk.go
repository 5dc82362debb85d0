// Package sdk provides a public Go API for releasing uv-managed Python
// projects. It runs the same pipeline as the kraken command: resolve the
// configuration, date the changelog, set the package version and, as
// configured, commit, tag, publish and bump to the next pre-release.
//
// Basic usage:
//
//	result, err := sdk.Release(ctx, "1.4.0", sdk.Options{
//	    Path: "/path/to/project",
//	})
//	fmt.Println(result.Tag) // "1.4.0"
//
//	cfg, err := sdk.ResolveConfig(sdk.Options{Path: "."})
//	fmt.Println(cfg.ChangelogDateFormat) // "short"
package sdk

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/MyCarrier-DevOps/go-kraken/internal/config"
	"github.com/MyCarrier-DevOps/go-kraken/internal/executor"
	"github.com/MyCarrier-DevOps/go-kraken/internal/git"
	ghprovider "github.com/MyCarrier-DevOps/go-kraken/internal/github"
	"github.com/MyCarrier-DevOps/go-kraken/internal/release"
	"github.com/MyCarrier-DevOps/go-kraken/internal/uv"
)

// Options configures a release. Nil and empty fields fall back to the
// project's configuration and then to the defaults.
type Options struct {
	// Path to the project directory holding pyproject.toml. Defaults to ".".
	Path string

	// ConfigPath is the path to a kraken YAML config file.
	// If empty, auto-detects .kraken.yml or kraken.yml in the project.
	ConfigPath string

	// ChangelogDateFormat is "auto", "long" or "short".
	ChangelogDateFormat string

	// ChangelogPath is the changelog location, relative to Path unless absolute.
	ChangelogPath string

	BumpAfterRelease *bool
	CommitChanges    *bool
	Tag              *bool
	GitHubRelease    *bool

	// GitHubRepo is "owner/repo". Defaults to the origin remote.
	GitHubRepo string

	// Token is a GitHub personal access token or GITHUB_TOKEN.
	Token string

	// AppID is the GitHub App ID for app authentication.
	AppID int64

	// AppKeyPath is the path to a GitHub App private key PEM file.
	AppKeyPath string

	// BaseURL is a custom GitHub API base URL for GitHub Enterprise.
	BaseURL string

	// Now returns the release date. Defaults to time.Now.
	Now func() time.Time
}

// Config is the fully resolved release configuration.
type Config struct {
	// ChangelogDateFormat is "long" or "short"; auto is resolved by
	// inspecting the changelog.
	ChangelogDateFormat string

	// ChangelogPath is the absolute changelog location.
	ChangelogPath string

	BumpAfterRelease bool
	CommitChanges    bool
	Tag              bool
	GitHubRelease    bool
}

// Result describes a completed release.
type Result struct {
	// Version is the released version, as requested.
	Version string

	// Committed reports whether the release was committed and pushed.
	Committed bool

	// Tag is the pushed tag. Empty when tagging is disabled.
	Tag string

	// ReleaseURL is the web URL of the GitHub release, if one was published.
	ReleaseURL string

	// BumpedVersion is the pre-release the project moved to after the
	// release. Empty when bumping is disabled.
	BumpedVersion string
}

// ResolveConfig returns the configuration a release with opts would use.
func ResolveConfig(opts Options) (*Config, error) {
	eff, _, err := load(opts)
	if err != nil {
		return nil, err
	}
	return &Config{
		ChangelogDateFormat: eff.ChangelogDateFormat.String(),
		ChangelogPath:       eff.ChangelogPath,
		BumpAfterRelease:    eff.BumpAfterRelease,
		CommitChanges:       eff.CommitChanges,
		Tag:                 eff.Tag,
		GitHubRelease:       eff.GitHubRelease,
	}, nil
}

// Release releases version of the project at opts.Path. The version string is
// used verbatim. A failure part way through leaves earlier steps in place.
func Release(ctx context.Context, version string, opts Options) (*Result, error) {
	eff, dir, err := load(opts)
	if err != nil {
		return nil, err
	}

	exec := executor.New(dir)
	tool := uv.New(exec)
	if _, err := tool.CheckMinimumVersion(ctx); err != nil {
		return nil, err
	}

	wf := &release.Workflow{
		Dir:    dir,
		Config: eff,
		Exec:   exec,
		UV:     tool,
		Now:    opts.Now,
	}
	if eff.GitHubRelease {
		wf.Publisher, err = newPublisher(ctx, dir, opts)
		if err != nil {
			return nil, err
		}
	}

	res, err := wf.Run(ctx, version)
	if err != nil {
		return nil, err
	}
	return &Result{
		Version:       res.Version,
		Committed:     res.Committed,
		Tag:           res.Tag,
		ReleaseURL:    res.ReleaseURL,
		BumpedVersion: res.BumpedVersion,
	}, nil
}

// load resolves the effective configuration and the absolute project directory.
func load(opts Options) (*config.Effective, string, error) {
	path := opts.Path
	if path == "" {
		path = "."
	}
	dir, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("resolving project path: %w", err)
	}

	overrides, err := overridesFrom(opts)
	if err != nil {
		return nil, "", err
	}

	eff, _, err := config.Load(dir, opts.ConfigPath, overrides)
	if err != nil {
		return nil, "", err
	}
	return eff, dir, nil
}

// overridesFrom maps the caller's options onto a configuration layer.
func overridesFrom(opts Options) (*config.Config, error) {
	o := &config.Config{
		BumpAfterRelease: opts.BumpAfterRelease,
		CommitChanges:    opts.CommitChanges,
		Tag:              opts.Tag,
		GitHubRelease:    opts.GitHubRelease,
	}
	if opts.ChangelogDateFormat != "" {
		f, err := config.ParseDateFormat(opts.ChangelogDateFormat)
		if err != nil {
			return nil, err
		}
		o.ChangelogDateFormat = &f
	}
	if opts.ChangelogPath != "" {
		p := opts.ChangelogPath
		o.ChangelogPath = &p
	}
	return o, nil
}

func newPublisher(ctx context.Context, dir string, opts Options) (release.Publisher, error) {
	var repo git.Repository
	if r, err := git.Open(dir); err == nil {
		repo = r
	}

	owner, name, err := ghprovider.ResolveRepository(opts.GitHubRepo, repo)
	if err != nil {
		return nil, err
	}

	client, err := ghprovider.NewClient(ctx, ghprovider.ClientConfig{
		Token:      opts.Token,
		AppID:      opts.AppID,
		AppKeyPath: opts.AppKeyPath,
		BaseURL:    opts.BaseURL,
		Owner:      owner,
	})
	if err != nil {
		return nil, fmt.Errorf("creating GitHub client: %w", err)
	}
	return ghprovider.NewPublisher(client, owner, name), nil
}
