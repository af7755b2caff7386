// Package rlog is a minimal logger in the spirit of golang-dep's log
// package: a thin wrapper around an io.Writer, not a full structured
// logging framework, because the driver only ever needs to narrate what
// the resolver is doing.
package rlog

import (
	"fmt"
	"io"
)

// Logger wraps an io.Writer with a couple of formatting conveniences.
type Logger struct {
	io.Writer
}

// New returns a new logger which writes to w.
func New(w io.Writer) *Logger {
	return &Logger{Writer: w}
}

// Logln logs a line.
func (l *Logger) Logln(args ...interface{}) {
	fmt.Fprintln(l, args...)
}

// Logf logs a formatted string.
func (l *Logger) Logf(f string, args ...interface{}) {
	fmt.Fprintf(l, f, args...)
}

// LogResolvefln logs a formatted line, prefixed with `resolve: `.
func (l *Logger) LogResolvefln(format string, args ...interface{}) {
	fmt.Fprintf(l, "resolve: "+format+"\n", args...)
}
