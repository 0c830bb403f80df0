package compiler

import (
	"fmt"
	"io"
	"os"
)

// Logger traces compilation stages (concat insertion, postfix form,
// construction results) when verbose mode is on. The zero value is a
// disabled logger.
type Logger struct {
	verbose bool
	out     io.Writer
}

// NewLogger returns a logger writing to stderr. Disabled loggers swallow
// all output, so call sites never need to guard.
func NewLogger(verbose bool) *Logger {
	return &Logger{verbose: verbose, out: os.Stderr}
}

// SetOutput redirects the logger, mainly for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Section prints a stage header.
func (l *Logger) Section(name string) {
	if l != nil && l.verbose {
		fmt.Fprintf(l.out, "\n[nfaviz] === %s ===\n", name)
	}
}

// Log prints one formatted line.
func (l *Logger) Log(format string, args ...interface{}) {
	if l != nil && l.verbose {
		fmt.Fprintf(l.out, "[nfaviz] "+format+"\n", args...)
	}
}
