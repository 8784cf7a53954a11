// Package diag builds the diagnostic logger shared by the conversion commands.
package diag

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing plain, untimestamped lines to w.
// Debug output is enabled when verbose is set.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
}

// OrDiscard returns logger, or a logger that drops everything when logger is nil.
func OrDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return log.New(io.Discard)
}
