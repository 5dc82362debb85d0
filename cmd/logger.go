package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// newLogger builds a text logger on w for a --verbosity value.
func newLogger(w io.Writer, verbosity string) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(verbosity) {
	case "quiet":
		level = slog.LevelError
	case "info", "":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		return nil, fmt.Errorf("unknown verbosity %q: expected quiet, info or debug", verbosity)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
