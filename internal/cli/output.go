// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on
// their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//
//   - Format* functions return a formatted string without performing
//     I/O. They are pure functions suitable for composition.

package cli

import (
	"fmt"
	"io"

	"github.com/agbru/ctkit/internal/orchestration"
	"github.com/agbru/ctkit/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// Quiet mode prints only the result value.
	Quiet bool
	// Verbose shows per-averager timing.
	Verbose bool
}

// FormatQuietResult returns the bare result line.
func FormatQuietResult(r orchestration.Result) string {
	if r.Err != nil {
		return "error: " + r.Err.Error()
	}
	return r.Value.String()
}

// DisplayResults writes the outcome of a pipeline run. In quiet mode a
// single value line is printed; otherwise one line per averager, with
// durations in verbose mode.
func DisplayResults(w io.Writer, results []orchestration.Result, cfg OutputConfig) {
	if len(results) == 0 {
		return
	}
	if cfg.Quiet {
		fmt.Fprintln(w, FormatQuietResult(results[0]))
		return
	}
	theme := ui.Current()
	for _, r := range results {
		status := theme.Success + "ok" + theme.Reset
		value := r.Value.String()
		if r.Err != nil {
			status = theme.Error + "error" + theme.Reset
			value = r.Err.Error()
		}
		if cfg.Verbose {
			fmt.Fprintf(w, "%s%-10s%s %s  %s  (%s)\n",
				theme.Primary, r.Name, theme.Reset,
				status, value, FormatExecutionDuration(r.Duration))
		} else {
			fmt.Fprintf(w, "%s%-10s%s %s  %s\n",
				theme.Primary, r.Name, theme.Reset, status, value)
		}
	}
}

// DisplayMismatch writes a comparison failure notice.
func DisplayMismatch(w io.Writer, err error) {
	theme := ui.Current()
	fmt.Fprintf(w, "%s%s%s\n", theme.Error, err.Error(), theme.Reset)
}
