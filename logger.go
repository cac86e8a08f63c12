// logger.go - minimal structured-enough logging for the IBM-XT core
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"log"
	"os"
)

// Logger is the ambient logging seam used throughout the core. It stays on
// the standard library's log.Logger because nothing in the example pack
// reaches for a structured logging library either - see DESIGN.md.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

type stdLogger struct {
	debug *log.Logger
	info  *log.Logger
	warn  *log.Logger
	trace bool
}

// NewStdLogger builds a Logger writing to stderr. When trace is false,
// Debugf calls are dropped cheaply without formatting.
func NewStdLogger(trace bool) Logger {
	flags := log.LstdFlags | log.Lmicroseconds
	return &stdLogger{
		debug: log.New(os.Stderr, "DEBUG ", flags),
		info:  log.New(os.Stderr, "INFO  ", flags),
		warn:  log.New(os.Stderr, "WARN  ", flags),
		trace: trace,
	}
}

func (l *stdLogger) Debugf(format string, args ...any) {
	if !l.trace {
		return
	}
	l.debug.Printf(format, args...)
}

func (l *stdLogger) Infof(format string, args ...any) { l.info.Printf(format, args...) }
func (l *stdLogger) Warnf(format string, args ...any) { l.warn.Printf(format, args...) }

// nopLogger discards everything; used by components under test that don't
// want stderr noise.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
