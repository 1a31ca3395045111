// Package logger provides modifications to charmbracelet/log's default logger to be used in various files/packages.
//
// Every logger writes to stderr, plus the rotated log file once AddFile ran:
// in server mode stdout carries the msgpack stream.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// output is where New points its loggers. AddFile extends it with the log file.
var output io.Writer = os.Stderr

// New creates a new default charm log on the current output, stderr unless
// AddFile was called before.
func New(prefix string) *log.Logger {
	return NewWithWriter(output, prefix, log.GetLevel())
}

// NewWithWriter creates a charm log on w, used by tests and the CLI
func NewWithWriter(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: level == log.DebugLevel,
		Formatter:       log.TextFormatter,
		Level:           level,
	})
}
