package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DateFormat is the changelog date notation requested by the user.
// DateFormatAuto must be resolved to a concrete changelog.DateFormat before
// any date is rendered; see Resolve.
type DateFormat int

const (
	DateFormatAuto DateFormat = iota
	DateFormatLong
	DateFormatShort
)

// DateFormatNames lists the accepted spellings, for help text.
var DateFormatNames = []string{"auto", "long", "short"}

func (f DateFormat) String() string {
	switch f {
	case DateFormatAuto:
		return "auto"
	case DateFormatLong:
		return "long"
	case DateFormatShort:
		return "short"
	default:
		return "unknown"
	}
}

// ParseDateFormat parses "auto", "long" or "short", ignoring case.
func ParseDateFormat(s string) (DateFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return DateFormatAuto, nil
	case "long":
		return DateFormatLong, nil
	case "short":
		return DateFormatShort, nil
	default:
		return 0, fmt.Errorf("%w: unknown changelog date format %q (expected one of %s)",
			ErrInvalidConfig, s, strings.Join(DateFormatNames, ", "))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler, used by the TOML decoder.
func (f *DateFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseDateFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f DateFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for DateFormat.
func (f *DateFormat) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return f.UnmarshalText([]byte(s))
}

// Set implements pflag.Value so the format is validated while parsing flags.
func (f *DateFormat) Set(s string) error {
	return f.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (f *DateFormat) Type() string {
	return "format"
}
