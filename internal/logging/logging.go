// Package logging configures the diagnostic logger.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// New returns a human-readable logger on w. Only warnings and errors are
// shown unless debug is set.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isColorTerminal(w)}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

type fder interface {
	Fd() uintptr
}

func isColorTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}
