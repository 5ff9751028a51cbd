// Package bridgelog provides the small leveled logger (a charmbracelet
// *log.Logger) the analysis session wraps around its optional progress
// callback.
package bridgelog

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New builds a stderr logger at debug level if debug is set, info level
// otherwise.
func New(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}

// Discard returns a logger that drops everything, for library callers
// (tests, embedders) that don't want the session's progress logging.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
