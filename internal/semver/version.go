// Package semver provides a small immutable semantic version type used to
// enforce minimum versions of external tools. Release versions handled by
// kraken are passed through verbatim and never parsed here.
package semver

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var versionRegex = regexp.MustCompile(
	`^[vV]?(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:-([^+]*))?(?:\+.*)?$`,
)

// SemanticVersion represents a semantic version.
type SemanticVersion struct {
	Major         int64
	Minor         int64
	Patch         int64
	PreReleaseTag PreReleaseTag
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(s string) SemanticVersion {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse parses a version string such as "0.7.20", "v1.2" or "1.2.3-beta.4".
// Build metadata is accepted and discarded.
func Parse(s string) (SemanticVersion, error) {
	matches := versionRegex.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return SemanticVersion{}, errors.New("invalid version format: " + s)
	}

	var v SemanticVersion

	major, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return SemanticVersion{}, errors.New("invalid major version: " + matches[1])
	}
	v.Major = major

	if matches[2] != "" {
		minor, err := strconv.ParseInt(matches[2], 10, 64)
		if err != nil {
			return SemanticVersion{}, errors.New("invalid minor version: " + matches[2])
		}
		v.Minor = minor
	}

	if matches[3] != "" {
		patch, err := strconv.ParseInt(matches[3], 10, 64)
		if err != nil {
			return SemanticVersion{}, errors.New("invalid patch version: " + matches[3])
		}
		v.Patch = patch
	}

	if matches[4] != "" {
		v.PreReleaseTag = parsePreReleaseTag(matches[4])
	}

	return v, nil
}

// parsePreReleaseTag parses a pre-release tag string into a PreReleaseTag.
// Handles formats like "beta.4", "beta", "4", "alpha.1".
func parsePreReleaseTag(s string) PreReleaseTag {
	if s == "" {
		return PreReleaseTag{}
	}

	// Try splitting on the last dot
	lastDot := strings.LastIndex(s, ".")
	if lastDot >= 0 {
		name := s[:lastDot]
		numStr := s[lastDot+1:]
		if num, err := strconv.ParseInt(numStr, 10, 64); err == nil {
			return PreReleaseTag{Name: name, Number: &num}
		}
	}

	if num, err := strconv.ParseInt(s, 10, 64); err == nil {
		return PreReleaseTag{Number: &num}
	}

	return PreReleaseTag{Name: s}
}

// CompareTo compares two SemanticVersions.
// Returns a negative value, zero, or a positive value.
func (v SemanticVersion) CompareTo(other SemanticVersion) int {
	if v.Major != other.Major {
		if v.Major > other.Major {
			return 1
		}
		return -1
	}

	if v.Minor != other.Minor {
		if v.Minor > other.Minor {
			return 1
		}
		return -1
	}

	if v.Patch != other.Patch {
		if v.Patch > other.Patch {
			return 1
		}
		return -1
	}

	return v.PreReleaseTag.CompareTo(other.PreReleaseTag)
}

// AtLeast reports whether v is greater than or equal to floor.
func (v SemanticVersion) AtLeast(floor SemanticVersion) bool {
	return v.CompareTo(floor) >= 0
}

// SemVer returns the SemVer 2.0 format (e.g., "1.2.3" or "1.2.3-beta.4").
func (v SemanticVersion) SemVer() string {
	base := strconv.FormatInt(v.Major, 10) + "." +
		strconv.FormatInt(v.Minor, 10) + "." +
		strconv.FormatInt(v.Patch, 10)
	if tag := v.PreReleaseTag.String(); tag != "" {
		return base + "-" + tag
	}
	return base
}

func (v SemanticVersion) String() string {
	return v.SemVer()
}
