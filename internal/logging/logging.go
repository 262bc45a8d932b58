// Package logging provides the zerolog-based logger used across the
// ctcalc application. The library packages never log; logging is an
// application concern, and secret values are never written to the log.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New creates the application logger writing to w. Verbose selects debug
// level; quiet restricts output to errors.
func New(w io.Writer, verbose, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
