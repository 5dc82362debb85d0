package release

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MyCarrier-DevOps/go-kraken/internal/changelog"
	"github.com/MyCarrier-DevOps/go-kraken/internal/config"
	"github.com/MyCarrier-DevOps/go-kraken/internal/executor"
	"github.com/MyCarrier-DevOps/go-kraken/internal/uv"

	"github.com/stretchr/testify/require"
)

const testChangelog = "# Changelog\n\n## Next release\n\n- Shiny\n\n## 1.1.0 - 2025-05-01\n\n- Old\n"

var releaseDay = time.Date(2025, time.June, 21, 9, 0, 0, 0, time.Local)

// fakeUV scripts uv: "version --short" reports the current version, which
// "version <v>" sets and "version --bump ..." advances to bumped.
func fakeUV(bumped string) *executor.MockExecutor {
	current := "0.0.0"
	return &executor.MockExecutor{
		RunFunc: func(program string, args []string) error {
			if program == uv.Program && len(args) == 2 && args[0] == "version" {
				current = args[1]
			}
			if program == uv.Program && len(args) > 1 && args[1] == "--bump" {
				current = bumped
			}
			return nil
		},
		OutputFunc: func(program string, args []string) (string, error) {
			return current, nil
		},
	}
}

func newWorkflow(t *testing.T, m *executor.MockExecutor, ec config.Effective) (*Workflow, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "CHANGELOG.md")
	require.NoError(t, os.WriteFile(path, []byte(testChangelog), 0o644))

	ec.ChangelogPath = path
	if ec.ChangelogDateFormat == 0 {
		ec.ChangelogDateFormat = changelog.DateFormatShort
	}
	return &Workflow{
		Dir:    dir,
		Config: &ec,
		Exec:   m,
		UV:     uv.New(m),
		Now:    func() time.Time { return releaseDay },
	}, path
}

type fakePublisher struct {
	tag, notes string
	err        error
}

func (p *fakePublisher) Publish(_ context.Context, tag, notes string) (string, error) {
	p.tag, p.notes = tag, notes
	if p.err != nil {
		return "", p.err
	}
	return "https://github.com/acme/widget/releases/tag/" + tag, nil
}

func TestRun_FullRelease(t *testing.T) {
	m := fakeUV("1.2.1a1")
	w, path := newWorkflow(t, m, config.Effective{CommitChanges: true, Tag: true, BumpAfterRelease: true})

	res, err := w.Run(context.Background(), "1.2.0")
	require.NoError(t, err)
	require.Equal(t, &Result{
		Version:       "1.2.0",
		Committed:     true,
		Tag:           "1.2.0",
		BumpedVersion: "1.2.1a1",
	}, res)

	require.Equal(t, []string{
		"uv version 1.2.0",
		"git add pyproject.toml",
		"git add CHANGELOG.md",
		"git add uv.lock",
		"git commit -m Release 1.2.0",
		"git push",
		"uv version --short",
		"git tag -a 1.2.0 -m 1.2.0",
		"git push --tags",
		"uv version --bump patch --bump alpha",
		"uv version --short",
		"git add pyproject.toml",
		"git add CHANGELOG.md",
		"git add uv.lock",
		"git commit -m Bump version to 1.2.1a1",
		"git push",
	}, m.CommandLines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "\n## 1.2.0 - 2025-06-21\n")
}

func TestRun_NoCommitOnlySetsVersion(t *testing.T) {
	m := fakeUV("unused")
	w, _ := newWorkflow(t, m, config.Effective{CommitChanges: false, Tag: true, BumpAfterRelease: true})

	res, err := w.Run(context.Background(), "1.2.0")
	require.NoError(t, err)
	require.False(t, res.Committed)
	require.Empty(t, res.Tag)
	require.Equal(t, []string{"uv version 1.2.0"}, m.CommandLines())
}

func TestRun_CommitWithoutTagOrBump(t *testing.T) {
	m := fakeUV("unused")
	w, _ := newWorkflow(t, m, config.Effective{CommitChanges: true})

	res, err := w.Run(context.Background(), "1.2.0")
	require.NoError(t, err)
	require.True(t, res.Committed)
	require.Empty(t, res.BumpedVersion)

	for _, line := range m.CommandLines() {
		require.False(t, strings.HasPrefix(line, "git tag"), line)
		require.NotContains(t, line, "--bump")
	}
}

func TestRun_ChangelogOutsideProjectUsesAbsolutePath(t *testing.T) {
	m := fakeUV("unused")
	w, path := newWorkflow(t, m, config.Effective{CommitChanges: true})
	w.Dir = t.TempDir()

	_, err := w.Run(context.Background(), "1.2.0")
	require.NoError(t, err)
	require.Contains(t, m.CommandLines(), "git add "+path)
}

func TestRun_MissingHeaderStopsBeforeAnyCommand(t *testing.T) {
	m := fakeUV("unused")
	w, path := newWorkflow(t, m, config.Effective{CommitChanges: true})
	require.NoError(t, os.WriteFile(path, []byte("## 1.1.0 - 2025-05-01\n"), 0o644))

	_, err := w.Run(context.Background(), "1.2.0")
	require.ErrorIs(t, err, changelog.ErrNextReleaseHeaderNotFound)
	require.Empty(t, m.Calls)
}

func TestRun_SetVersionFailureStopsBeforeGit(t *testing.T) {
	m := &executor.MockExecutor{
		RunFunc: func(program string, _ []string) error {
			if program == uv.Program {
				return &executor.CommandError{Program: program, Reason: executor.ReasonNonZero, Code: 2}
			}
			return nil
		},
	}
	w, path := newWorkflow(t, m, config.Effective{CommitChanges: true})

	_, err := w.Run(context.Background(), "1.2.0")
	require.Error(t, err)
	require.Equal(t, []string{"uv version 1.2.0"}, m.CommandLines())

	// No rollback: the changelog keeps its new heading.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "## 1.2.0 - 2025-06-21")
}

func TestRun_StageFailureSkipsCommitPushTagAndBump(t *testing.T) {
	m := fakeUV("1.2.1a1")
	base := m.RunFunc
	m.RunFunc = func(program string, args []string) error {
		if program == GitProgram && args[0] == "add" && args[1] == "CHANGELOG.md" {
			return &executor.CommandError{Program: program, Args: args, Reason: executor.ReasonNonZero, Code: 1}
		}
		return base(program, args)
	}
	w, _ := newWorkflow(t, m, config.Effective{CommitChanges: true, Tag: true, BumpAfterRelease: true})

	_, err := w.Run(context.Background(), "1.2.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to add CHANGELOG.md to git")
	require.Equal(t, []string{
		"uv version 1.2.0",
		"git add pyproject.toml",
		"git add CHANGELOG.md",
	}, m.CommandLines())
}

func TestRun_PushTagsFailureSkipsBump(t *testing.T) {
	m := fakeUV("1.2.1a1")
	base := m.RunFunc
	m.RunFunc = func(program string, args []string) error {
		if program == GitProgram && len(args) == 2 && args[1] == "--tags" {
			return &executor.CommandError{Program: program, Args: args, Reason: executor.ReasonNonZero, Code: 1}
		}
		return base(program, args)
	}
	w, _ := newWorkflow(t, m, config.Effective{CommitChanges: true, Tag: true, BumpAfterRelease: true})

	_, err := w.Run(context.Background(), "1.2.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to push tags")
	lines := m.CommandLines()
	require.Equal(t, "git push --tags", lines[len(lines)-1])
}

func TestRun_PublishesGitHubRelease(t *testing.T) {
	m := fakeUV("unused")
	pub := &fakePublisher{}
	w, _ := newWorkflow(t, m, config.Effective{CommitChanges: true, Tag: true, GitHubRelease: true})
	w.Publisher = pub

	res, err := w.Run(context.Background(), "1.2.0")
	require.NoError(t, err)
	require.Equal(t, "1.2.0", pub.tag)
	require.Equal(t, "- Shiny", pub.notes)
	require.Equal(t, "https://github.com/acme/widget/releases/tag/1.2.0", res.ReleaseURL)
}

func TestRun_PublishFailureIsFatal(t *testing.T) {
	m := fakeUV("1.2.1a1")
	w, _ := newWorkflow(t, m, config.Effective{CommitChanges: true, Tag: true, GitHubRelease: true, BumpAfterRelease: true})
	w.Publisher = &fakePublisher{err: errors.New("403 Forbidden")}

	_, err := w.Run(context.Background(), "1.2.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to publish release 1.2.0")
	require.NotContains(t, m.CommandLines(), "uv version --bump patch --bump alpha")
}

func TestRun_PublishWithoutPublisher(t *testing.T) {
	m := fakeUV("unused")
	w, _ := newWorkflow(t, m, config.Effective{CommitChanges: true, Tag: true, GitHubRelease: true})

	_, err := w.Run(context.Background(), "1.2.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no publisher")
}

func TestRun_LongDate(t *testing.T) {
	m := fakeUV("unused")
	w, path := newWorkflow(t, m, config.Effective{ChangelogDateFormat: changelog.DateFormatLong})

	_, err := w.Run(context.Background(), "1.2.0")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "## 1.2.0 - June 21, 2025\n")
}
