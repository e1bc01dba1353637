// Package logger exposes the process-wide structured logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the shared logger. It stays a no-op until Init runs, which
// keeps library code and tests silent by default.
var Log = zerolog.Nop()

// Init routes log output to stderr as human-readable console lines,
// leaving stdout to the event output. Verbose lowers the level to
// debug.
func Init(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	Log = zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
