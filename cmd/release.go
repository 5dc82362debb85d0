package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MyCarrier-DevOps/go-kraken/internal/config"
	"github.com/MyCarrier-DevOps/go-kraken/internal/executor"
	"github.com/MyCarrier-DevOps/go-kraken/internal/git"
	"github.com/MyCarrier-DevOps/go-kraken/internal/github"
	"github.com/MyCarrier-DevOps/go-kraken/internal/output"
	"github.com/MyCarrier-DevOps/go-kraken/internal/release"
	"github.com/MyCarrier-DevOps/go-kraken/internal/uv"
)

// releaseArgs requires the release version, except with --show-config.
func releaseArgs(cmd *cobra.Command, args []string) error {
	if flagShowConfig {
		return cobra.MaximumNArgs(1)(cmd, args)
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func releaseRunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	logger, err := newLogger(cmd.ErrOrStderr(), flagVerbosity)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	// 1. Locate the project.
	dir, err := filepath.Abs(flagPath)
	if err != nil {
		return fmt.Errorf("resolving project path: %w", err)
	}

	// 2. Resolve configuration.
	cfg, project, err := config.Load(dir, flagConfig, cliOverrides(cmd.Flags()))
	if err != nil {
		return err
	}
	slog.Info("project loaded", "name", project.Project.Name, "version", project.Project.Version)

	// 3. Show config mode: print and exit.
	if flagShowConfig {
		return output.WriteConfig(cmd.OutOrStdout(), cfg)
	}

	// 4. Check uv before anything is modified.
	exec := executor.New(dir)
	tool := uv.New(exec)
	uvVersion, err := tool.CheckMinimumVersion(ctx)
	if err != nil {
		return err
	}
	slog.Debug("uv found", "version", uvVersion.String())

	// 5. Inspect the repository and set up publishing.
	repo := inspectRepository(dir)

	var publisher release.Publisher
	if cfg.GitHubRelease {
		publisher, err = newPublisher(ctx, repo)
		if err != nil {
			return err
		}
	}

	// 6. Release.
	wf := &release.Workflow{
		Dir:       dir,
		Config:    cfg,
		Exec:      exec,
		UV:        tool,
		Publisher: publisher,
	}
	res, err := wf.Run(ctx, args[0])
	if err != nil {
		return err
	}

	output.WriteResult(cmd.OutOrStdout(), res)
	return nil
}

// cliOverrides returns the configuration layer made of the flags the user
// actually set.
func cliOverrides(flags *pflag.FlagSet) *config.Config {
	o := &config.Config{
		BumpAfterRelease: pairOverride(flags, "bump-after-release", flagBumpAfterRelease, flagNoBumpAfterRelease),
		CommitChanges:    pairOverride(flags, "commit-changes", flagCommitChanges, flagNoCommitChanges),
	}
	if flags.Changed("changelog-date-format") {
		f := flagChangelogDateFormat
		o.ChangelogDateFormat = &f
	}
	if flags.Changed("changelog-path") {
		p := flagChangelogPath
		o.ChangelogPath = &p
	}
	if flags.Changed("tag") {
		t := flagTag
		o.Tag = &t
	}
	if flags.Changed("github-release") {
		g := flagGitHubRelease
		o.GitHubRelease = &g
	}
	return o
}

// pairOverride collapses a --name/--no-name flag pair. An explicit value on
// the positive flag, such as --name=false, is honored as given.
func pairOverride(flags *pflag.FlagSet, name string, positive, negative bool) *bool {
	if flags.Changed(name) && !negative {
		return &positive
	}
	return config.Tristate(positive, negative)
}

// inspectRepository logs the repository state. It returns nil when dir is
// not inside a git repository; the git executable reports that later if a
// commit is requested.
func inspectRepository(dir string) git.Repository {
	repo, err := git.Open(dir)
	if err != nil {
		slog.Debug("no git repository found", "path", dir, "error", err)
		return nil
	}

	branch, _ := repo.BranchName()
	sha, _ := repo.HeadShortSha()
	slog.Info("repository", "root", repo.WorkingDirectory(), "branch", branch, "head", sha)

	if n, err := repo.NumberOfUncommittedChanges(); err == nil && n > 0 {
		slog.Warn("working tree has uncommitted changes", "count", n)
	}
	return repo
}

func newPublisher(ctx context.Context, repo git.Repository) (*github.Publisher, error) {
	owner, name, err := github.ResolveRepository(flagGitHubRepo, repo)
	if err != nil {
		return nil, err
	}

	client, err := github.NewClient(ctx, github.ClientConfig{
		Token: flagToken,
		Owner: owner,
	})
	if err != nil {
		return nil, err
	}
	return github.NewPublisher(client, owner, name), nil
}
