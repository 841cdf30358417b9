package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

// Init sets up the process logger. Diagnostics go to stderr so the
// interactive console on stdout stays clean.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
}

func Logger() *zerolog.Logger {
	return &logger
}
