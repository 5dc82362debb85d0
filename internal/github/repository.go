package github

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MyCarrier-DevOps/go-kraken/internal/git"
)

// OriginRemote is the remote a repository's GitHub coordinates are read from.
const OriginRemote = "origin"

// ResolveRepository returns the owner and name of the GitHub repository, from
// an explicit "owner/repo" value or else the origin remote of repo.
func ResolveRepository(explicit string, repo git.Repository) (string, string, error) {
	if explicit != "" {
		owner, name, ok := strings.Cut(explicit, "/")
		if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
			return "", "", fmt.Errorf("invalid GitHub repository %q: expected owner/repo", explicit)
		}
		return owner, name, nil
	}

	if repo == nil {
		return "", "", errors.New("cannot determine the GitHub repository: not a git repository, name it explicitly")
	}
	remote, err := repo.RemoteURL(OriginRemote)
	if err != nil {
		return "", "", fmt.Errorf("cannot determine the GitHub repository: %w", err)
	}
	return git.ParseOwnerRepo(remote)
}
