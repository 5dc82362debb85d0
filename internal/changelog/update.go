package changelog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// nextReleaseHeading matches the placeholder heading for unreleased changes.
// Group 1 is the heading marker plus any spacing that follows it, group 2 a
// carriage return ending the line.
var nextReleaseHeading = regexp.MustCompile(`(?mi)^(#+[ \t]*)Next (?:release|version)[^\r\n]*(\r?)$`)

// Update rewrites the "Next release" heading of the changelog at path to
// "<version> - <date>", rendering now in the given format. The file is
// replaced atomically.
func Update(path, version string, format DateFormat, now time.Time) error {
	date, err := format.Format(now)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return readError(path, err)
	}

	updated, err := Rewrite(string(data), version, date)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(path, []byte(updated)); err != nil {
		return fmt.Errorf("failed to write to changelog file %s: %w", path, err)
	}
	return nil
}

// Rewrite replaces the first "Next release" heading in text with
// "<version> - <date>", keeping the heading marker and line terminator.
// Later placeholder headings are left untouched.
func Rewrite(text, version, date string) (string, error) {
	loc := nextReleaseHeading.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", ErrNextReleaseHeaderNotFound
	}

	prefix := text[loc[2]:loc[3]]
	cr := text[loc[4]:loc[5]]
	heading := prefix + version + " - " + date + cr

	return text[:loc[0]] + heading + text[loc[1]:], nil
}

func readError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("changelog file %s not found: %w", path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("permission denied reading changelog file %s: %w", path, err)
	default:
		return fmt.Errorf("failed to read changelog file %s: %w", path, err)
	}
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it over path, keeping the original file mode.
func writeFileAtomic(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
