package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MyCarrier-DevOps/go-kraken/internal/config"
	"github.com/MyCarrier-DevOps/go-kraken/internal/output"
)

// Global flags shared across commands.
var (
	flagPath       string
	flagConfig     string
	flagShowConfig bool
	flagVerbosity  string
)

// Release flags. Each one becomes a configuration override only when it is
// set on the command line.
var (
	flagChangelogDateFormat config.DateFormat
	flagChangelogPath       string
	flagBumpAfterRelease    bool
	flagNoBumpAfterRelease  bool
	flagCommitChanges       bool
	flagNoCommitChanges     bool
	flagTag                 bool
	flagGitHubRelease       bool
	flagGitHubRepo          string
	flagToken               string
)

// rootCmd is the top-level command for kraken.
var rootCmd = &cobra.Command{
	Use:   "kraken [flags] NEW-VERSION",
	Short: "Release a uv-managed Python project",
	Long: "kraken dates the changelog's next release heading, sets the package version with uv and, " +
		"as configured, commits, pushes, tags, publishes a GitHub release and bumps to the next pre-release.",
	Args:          releaseArgs,
	RunE:          releaseRunE,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPath, "path", "p", ".", "path to the project directory")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVarP(&flagVerbosity, "verbosity", "v", "info", "log verbosity: quiet, info, debug")

	flags := rootCmd.Flags()
	flags.BoolVar(&flagShowConfig, "show-config", false, "display the effective configuration and exit")
	flags.Var(&flagChangelogDateFormat, "changelog-date-format",
		"changelog date format: "+strings.Join(config.DateFormatNames, ", "))
	flags.StringVar(&flagChangelogPath, "changelog-path", "", "path to the changelog (default: "+config.DefaultChangelogPath+")")
	flags.BoolVar(&flagBumpAfterRelease, "bump-after-release", false, "bump to the next pre-release after releasing")
	flags.BoolVar(&flagNoBumpAfterRelease, "no-bump-after-release", false, "do not bump after releasing")
	flags.BoolVar(&flagCommitChanges, "commit-changes", false, "commit and push the release changes")
	flags.BoolVar(&flagNoCommitChanges, "no-commit-changes", false, "leave the release changes uncommitted")
	flags.BoolVar(&flagTag, "tag", false, "create and push an annotated tag for the release")
	flags.BoolVar(&flagGitHubRelease, "github-release", false, "publish a GitHub release for the tag")
	flags.StringVar(&flagGitHubRepo, "github-repo", "", "GitHub repository as owner/repo (default: from the origin remote)")
	flags.StringVar(&flagToken, "token", "", "GitHub token (default: $GITHUB_TOKEN)")

	rootCmd.MarkFlagsMutuallyExclusive("bump-after-release", "no-bump-after-release")
	rootCmd.MarkFlagsMutuallyExclusive("commit-changes", "no-commit-changes")
}

// Execute runs the root command. An interrupt cancels the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		output.WriteError(os.Stderr, err)
		os.Exit(1)
	}
}
