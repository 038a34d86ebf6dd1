// Package observability holds the logging and metrics plumbing shared by the
// CLI, the SSH server and the game observers.
package observability

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger returns a stderr logger at the named level ("debug", "info",
// "warn", "error"). Unknown levels fall back to info.
func NewLogger(level, prefix string) *log.Logger {
	return NewLoggerTo(os.Stderr, level, prefix)
}

// NewLoggerTo is NewLogger with an explicit writer.
func NewLoggerTo(w io.Writer, level, prefix string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
}
