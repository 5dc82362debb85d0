package git

import (
	"path/filepath"
	"testing"

	"github.com/MyCarrier-DevOps/go-kraken/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open("/nonexistent/path")
	require.Error(t, err)
	require.Contains(t, err.Error(), "opening git repository")
}

func TestOpen_FromSubdirectory(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	tr.WriteFile("src/pkg/__init__.py", "")
	tr.Commit("initial", "src/pkg/__init__.py")

	repo, err := Open(filepath.Join(tr.Path(), "src", "pkg"))
	require.NoError(t, err)
	require.Equal(t, tr.Path(), repo.WorkingDirectory())
}

func TestBranchNameAndHead(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	sha := tr.Commit("initial")
	tr.CreateBranch("release-prep", sha)

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	name, err := repo.BranchName()
	require.NoError(t, err)
	require.Equal(t, "release-prep", name)

	short, err := repo.HeadShortSha()
	require.NoError(t, err)
	require.Equal(t, sha[:7], short)
}

func TestHead_EmptyRepository(t *testing.T) {
	tr := testutil.NewTestRepo(t)

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	_, err = repo.HeadShortSha()
	require.Error(t, err)
}

func TestNumberOfUncommittedChanges(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	tr.WriteFile("pyproject.toml", "[project]\n")
	tr.WriteFile("CHANGELOG.md", "## Next release\n")
	tr.Commit("initial", "pyproject.toml", "CHANGELOG.md")

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	n, err := repo.NumberOfUncommittedChanges()
	require.NoError(t, err)
	require.Equal(t, 0, n)

	tr.WriteFile("CHANGELOG.md", "## 1.0.0 - 2025-06-21\n")
	tr.WriteFile("notes.txt", "untracked")

	n, err = repo.NumberOfUncommittedChanges()
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestRemoteURL(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	tr.AddRemote("origin", "git@github.com:acme/widget.git")

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	u, err := repo.RemoteURL("origin")
	require.NoError(t, err)
	require.Equal(t, "git@github.com:acme/widget.git", u)

	_, err = repo.RemoteURL("upstream")
	require.Error(t, err)
	require.Contains(t, err.Error(), `remote "upstream" not configured`)
}
