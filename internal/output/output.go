// Package output renders user-facing messages: the fatal error line, release
// progress notes and the resolved configuration.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/MyCarrier-DevOps/go-kraken/internal/config"
	"github.com/MyCarrier-DevOps/go-kraken/internal/release"
)

var (
	errorStyle    = color.New(color.FgRed)
	progressStyle = color.New(color.FgHiBlack)
	successStyle  = color.New(color.FgGreen, color.Bold)
)

// WriteError prints err as a single red "Error: <message>" line.
func WriteError(w io.Writer, err error) {
	errorStyle.Fprintln(w, "Error: "+err.Error())
}

// WriteProgress prints a dimmed progress note.
func WriteProgress(w io.Writer, format string, args ...any) {
	progressStyle.Fprintln(w, fmt.Sprintf(format, args...))
}

// WriteResult reports what a release run did, one line per completed stage.
func WriteResult(w io.Writer, res *release.Result) {
	if res.Committed {
		WriteProgress(w, "Changes committed and pushed to git repository.")
	}
	if res.Tag != "" {
		WriteProgress(w, "Tag %s created and pushed.", res.Tag)
	}
	if res.ReleaseURL != "" {
		WriteProgress(w, "GitHub release published: %s", res.ReleaseURL)
	}
	if res.BumpedVersion != "" {
		WriteProgress(w, "Version bumped to %s", res.BumpedVersion)
	}
	successStyle.Fprintf(w, "Released %s\n", res.Version)
}

// WriteConfig renders the resolved configuration as YAML.
func WriteConfig(w io.Writer, cfg *config.Effective) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return enc.Close()
}
