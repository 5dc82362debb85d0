// Example program demonstrating the kraken library API.
//
// Show the configuration a release of the project in the current directory
// would use:
//
//	go run ./example/
//
// Release it (requires uv and a git remote):
//
//	go run ./example/ 1.4.0
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/MyCarrier-DevOps/go-kraken/pkg/sdk"
)

func main() {
	opts := sdk.Options{Path: "."}

	if len(os.Args) < 2 {
		showConfig(opts)
		return
	}
	releaseVersion(os.Args[1], opts)
}

func showConfig(opts sdk.Options) {
	cfg, err := sdk.ResolveConfig(opts)
	if err != nil {
		log.Fatalf("resolving configuration failed: %v", err)
	}

	fmt.Println("=== Release Configuration ===")
	fmt.Printf("%-24s %s\n", "changelog_date_format", cfg.ChangelogDateFormat)
	fmt.Printf("%-24s %s\n", "changelog_path", cfg.ChangelogPath)
	fmt.Printf("%-24s %t\n", "bump_after_release", cfg.BumpAfterRelease)
	fmt.Printf("%-24s %t\n", "commit_changes", cfg.CommitChanges)
	fmt.Printf("%-24s %t\n", "tag", cfg.Tag)
	fmt.Printf("%-24s %t\n", "github_release", cfg.GitHubRelease)
}

func releaseVersion(version string, opts sdk.Options) {
	result, err := sdk.Release(context.Background(), version, opts)
	if err != nil {
		log.Fatalf("release failed: %v", err)
	}

	fmt.Printf("Released %s\n", result.Version)
	if result.Tag != "" {
		fmt.Printf("Tagged %s\n", result.Tag)
	}
	if result.ReleaseURL != "" {
		fmt.Printf("Published %s\n", result.ReleaseURL)
	}
	if result.BumpedVersion != "" {
		fmt.Printf("Now at %s\n", result.BumpedVersion)
	}
}
