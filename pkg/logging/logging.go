// Package logging builds the zerolog logger injected into the formkit
// helpers by the CLI.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Config selects the logger shape.
type Config struct {
	Debug        bool `split_words:"true" default:"false"`
	PrettyFormat bool `split_words:"true" default:"false"`
}

// New builds a logger stamped with time and caller, writing to w (stderr
// when nil). Trace lines from the helpers are debug level, so they only
// show with Debug.
func New(cfg Config, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	var logger zerolog.Logger
	if cfg.PrettyFormat {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w})
	} else {
		logger = zerolog.New(w)
	}
	logger = logger.With().Timestamp().Caller().Logger()

	if cfg.Debug {
		return logger.Level(zerolog.DebugLevel)
	}
	return logger.Level(zerolog.InfoLevel)
}
