// Package git inspects the project's git repository with go-git. It never
// mutates the repository; staging, committing, tagging and pushing are done
// by the git executable through the release package.
package git

// Repository provides read-only repository queries.
// This is the key abstraction point for testing.
type Repository interface {
	// WorkingDirectory returns the path to the working directory root.
	WorkingDirectory() string

	// BranchName returns the short name of the checked-out branch, or ""
	// when HEAD is detached.
	BranchName() (string, error)

	// HeadShortSha returns the first 7 characters of the HEAD commit SHA.
	HeadShortSha() (string, error)

	// NumberOfUncommittedChanges returns the count of files with staged or
	// unstaged changes, untracked files included.
	NumberOfUncommittedChanges() (int, error)

	// RemoteURL returns the first URL configured for the named remote.
	RemoteURL(name string) (string, error)
}
