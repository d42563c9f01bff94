// Package core holds the tool-level concerns shared by the converter and
// the CLI: configuration and logging.
package core

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	loggerOnce      sync.Once
	loggerSingleton *Logger
)

type VerboseLevel int

const (
	VerboseOff VerboseLevel = iota
	VerboseInfo
	VerboseDebug
	VerboseTrace
)

// CurrentLogger returns the process logger, creating it on first use.
func CurrentLogger() *Logger {
	loggerOnce.Do(func() {
		loggerSingleton = NewLogger()
	})
	return loggerSingleton
}

// Logger writes leveled messages. Everything up to Warn is always printed;
// Info, Debug and Trace require the matching verbose level.
type Logger struct {
	verbose VerboseLevel
	out     *log.Logger
}

func NewLogger() *Logger {
	return &Logger{
		verbose: VerboseOff,
		out:     log.New(os.Stderr, "", 0),
	}
}

// SetVerboseLevel overrides the default verbose level.
func (l *Logger) SetVerboseLevel(level VerboseLevel) *Logger {
	l.verbose = level
	return l
}

// SetOutput redirects the logger, mainly for tests.
func (l *Logger) SetOutput(w io.Writer) *Logger {
	l.out = log.New(w, "", 0)
	return l
}

func (l *Logger) Fatalf(format string, v ...any) {
	l.out.Printf(format, v...)
	os.Exit(1)
}

func (l *Logger) Warnf(format string, v ...any) {
	l.out.Printf(format, v...)
}

func (l *Logger) Infof(format string, v ...any) {
	l.printf(VerboseInfo, format, v...)
}

func (l *Logger) Debugf(format string, v ...any) {
	l.printf(VerboseDebug, format, v...)
}

func (l *Logger) Tracef(format string, v ...any) {
	l.printf(VerboseTrace, format, v...)
}

func (l *Logger) printf(level VerboseLevel, format string, v ...any) {
	if l.verbose >= level {
		l.out.Printf(format, v...)
	}
}
