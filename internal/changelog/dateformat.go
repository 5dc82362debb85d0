// Package changelog detects the date notation used by a changelog and
// rewrites its "Next release" placeholder heading into a dated release heading.
package changelog

import (
	"errors"
	"time"
)

var (
	// ErrNoDateFormatFound is returned when no dated release heading exists
	// to infer the date notation from.
	ErrNoDateFormatFound = errors.New("no valid date format found in the changelog")

	// ErrUnsupportedDateFormat is returned when formatting with a DateFormat
	// that is neither Long nor Short.
	ErrUnsupportedDateFormat = errors.New("unsupported date format for changelog")

	// ErrNextReleaseHeaderNotFound is returned when the changelog has no
	// "Next release" or "Next version" heading to replace.
	ErrNextReleaseHeaderNotFound = errors.New("next release header not found in the changelog")
)

// DateFormat is a concrete changelog date notation.
// The zero value is invalid so that an unresolved format cannot format dates.
type DateFormat int

const (
	// DateFormatLong renders dates like "June 21, 2025".
	DateFormatLong DateFormat = iota + 1
	// DateFormatShort renders dates like "2025-06-21".
	DateFormatShort
)

const (
	longLayout  = "January 02, 2006"
	shortLayout = "2006-01-02"
)

func (f DateFormat) String() string {
	switch f {
	case DateFormatLong:
		return "long"
	case DateFormatShort:
		return "short"
	default:
		return "unknown"
	}
}

// Valid reports whether f is Long or Short.
func (f DateFormat) Valid() bool {
	return f == DateFormatLong || f == DateFormatShort
}

// Format renders t in the receiver's notation.
func (f DateFormat) Format(t time.Time) (string, error) {
	switch f {
	case DateFormatLong:
		return t.Format(longLayout), nil
	case DateFormatShort:
		return t.Format(shortLayout), nil
	default:
		return "", ErrUnsupportedDateFormat
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f DateFormat) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, ErrUnsupportedDateFormat
	}
	return []byte(f.String()), nil
}
