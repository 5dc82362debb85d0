package github

import (
	"context"
	"fmt"
	"regexp"

	gh "github.com/google/go-github/v68/github"
)

// preReleaseVersion matches SemVer pre-releases ("1.0.0-rc.1") and PEP 440
// pre-releases ("1.0.0rc1", "1.0.1a1", "2.0.0.dev3").
var preReleaseVersion = regexp.MustCompile(`-|\d(?:a|b|rc|alpha|beta|\.?dev)\d*$`)

// Publisher creates GitHub releases for one repository.
type Publisher struct {
	client *gh.Client
	owner  string
	repo   string
}

// NewPublisher creates a Publisher for owner/repo.
func NewPublisher(client *gh.Client, owner, repo string) *Publisher {
	return &Publisher{client: client, owner: owner, repo: repo}
}

// Publish creates a published release for an existing tag, named after the
// tag, with notes as its body. It returns the release's web URL.
func (p *Publisher) Publish(ctx context.Context, tag, notes string) (string, error) {
	rel, _, err := p.client.Repositories.CreateRelease(ctx, p.owner, p.repo, &gh.RepositoryRelease{
		TagName:    gh.Ptr(tag),
		Name:       gh.Ptr(tag),
		Body:       gh.Ptr(notes),
		Draft:      gh.Ptr(false),
		Prerelease: gh.Ptr(IsPreRelease(tag)),
	})
	if err != nil {
		return "", fmt.Errorf("creating release for %s/%s: %w", p.owner, p.repo, err)
	}
	return rel.GetHTMLURL(), nil
}

// IsPreRelease reports whether a version string denotes a pre-release.
func IsPreRelease(version string) bool {
	return preReleaseVersion.MatchString(version)
}
