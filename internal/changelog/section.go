package changelog

import (
	"regexp"
	"strings"
)

var headingLine = regexp.MustCompile(`^(#+)[ \t]`)

// ExtractSection returns the notes recorded under the release heading for
// version, i.e. everything between "<version> - <date>" and the next heading
// of the same or a higher level. The version may be wrapped in brackets as in
// "## [1.2.0] - 2025-06-21".
func ExtractSection(text, version string) (string, bool) {
	release := regexp.MustCompile(`^(#+)[ \t]*\[?` + regexp.QuoteMeta(version) + `\]? - `)

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	level := 0
	start := -1
	for i, line := range lines {
		if start < 0 {
			if m := release.FindStringSubmatch(line); m != nil {
				level = len(m[1])
				start = i + 1
			}
			continue
		}
		if m := headingLine.FindStringSubmatch(line); m != nil && len(m[1]) <= level {
			return strings.TrimSpace(strings.Join(lines[start:i], "\n")), true
		}
	}
	if start < 0 {
		return "", false
	}
	return strings.TrimSpace(strings.Join(lines[start:], "\n")), true
}
