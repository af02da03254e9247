package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config represents logger configuration
type Config struct {
	// Level is one of debug, info, warn, error, fatal. Unknown values mean info.
	Level string
	// Pretty switches to human-readable console output
	Pretty bool
	// Output defaults to os.Stdout
	Output io.Writer
}

// New builds a zerolog.Logger from the config.
func New(config Config) zerolog.Logger {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	writer := config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{Out: config.Output, TimeFormat: time.RFC3339}
	}

	return zerolog.New(writer).
		Level(ParseLevel(config.Level)).
		With().
		Timestamp().
		Str("service", "polyclinic").
		Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
