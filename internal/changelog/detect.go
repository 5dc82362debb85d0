package changelog

import (
	"os"
	"regexp"
)

// A dated heading is a markdown heading whose last " - " is followed by a
// date. Short dates are checked across the whole document before long ones.
var (
	// The greedy prefix leaves group 1 holding the text after the last separator.
	headingTail = regexp.MustCompile(`(?m)^#+[^\r\n]* - ([^\r\n]*)\r?$`)

	shortDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\b`)
	longDate  = regexp.MustCompile(
		`^(?:January|February|March|April|May|June|July|August|September|October|November|December) \d{1,2}, \d{4}\b`,
	)
)

// Detect reads the changelog at path and classifies its date notation.
func Detect(path string) (DateFormat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, readError(path, err)
	}
	return DetectFormat(string(data))
}

// DetectFormat classifies the date notation used by changelog text.
func DetectFormat(text string) (DateFormat, error) {
	long := false
	for _, m := range headingTail.FindAllStringSubmatch(text, -1) {
		switch tail := m[1]; {
		case shortDate.MatchString(tail):
			return DateFormatShort, nil
		case longDate.MatchString(tail):
			long = true
		}
	}
	if long {
		return DateFormatLong, nil
	}
	return 0, ErrNoDateFormatFound
}
