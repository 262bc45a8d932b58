package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// FormatExecutionDuration formats a time.Duration for display. It shows
// microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation
// otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// Progress is a terminal spinner shown while the pipeline runs. A nil
// Progress is a no-op, so callers need not special-case quiet mode.
type Progress struct {
	s *spinner.Spinner
}

// StartProgress starts a spinner with the given message on w, or returns
// nil when disabled.
func StartProgress(w io.Writer, message string, enabled bool) *Progress {
	if !enabled {
		return nil
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	s.Start()
	return &Progress{s: s}
}

// Stop halts the spinner and clears its line.
func (p *Progress) Stop() {
	if p == nil {
		return
	}
	p.s.Stop()
}
