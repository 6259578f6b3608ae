// Package logutil configures the process-wide zerolog setup shared by
// the CLI and the library's debug paths.
package logutil

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets the global log level and output. Unknown level strings fall
// back to info. With console set, output is human-formatted to stderr;
// otherwise structured JSON.
func Init(level string, console bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if console {
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}
}

// Logger returns a child logger tagged with the owning component.
func Logger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
