package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// fakeUVScript edits pyproject.toml and uv.lock in the working directory the
// way uv does for the subcommands kraken runs.
const fakeUVScript = `#!/bin/sh
set -e
current() { sed -n 's/^version = "\(.*\)"$/\1/p' pyproject.toml | head -n 1; }
set_version() {
	sed 's/^version = ".*"$/version = "'"$1"'"/' pyproject.toml > pyproject.toml.tmp
	mv pyproject.toml.tmp pyproject.toml
	printf 'version = "%%s"\n' "$1" > uv.lock
}
case "$*" in
"self version --short") echo "%s" ;;
"version --short") current ;;
"version --bump patch --bump alpha") set_version "%s" ;;
"version "*) set_version "$2" ;;
*) echo "unexpected uv arguments: $*" >&2; exit 2 ;;
esac
`

// InstallFakeUV puts a uv stand-in first on PATH for the rest of the test.
// It reports selfVersion as its own version and bumps the project to bumpTo.
// Tests calling it are skipped on Windows.
func InstallFakeUV(t *testing.T, selfVersion, bumpTo string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake uv is a shell script")
	}

	dir := t.TempDir()
	script := fmt.Sprintf(fakeUVScript, selfVersion, bumpTo)
	if err := os.WriteFile(filepath.Join(dir, "uv"), []byte(script), 0o755); err != nil {
		t.Fatalf("writing fake uv: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// SetGitIdentity gives git commands run by the test a committer identity.
func SetGitIdentity(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GIT_AUTHOR_NAME", "GIT_COMMITTER_NAME"} {
		t.Setenv(key, "Release Bot")
	}
	for _, key := range []string{"GIT_AUTHOR_EMAIL", "GIT_COMMITTER_EMAIL"} {
		t.Setenv(key, "release@example.com")
	}
}
