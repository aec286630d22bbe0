// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package log is the minimal severity-plus-message logging facade spec §7
// asks for: "a severity level plus a message string; the default sink
// writes to standard output, a null sink discards." Grounded in
// internal/observability's StandardObserver from the teacher repo, trimmed
// to the facade shape the spec actually requires (no timing/metrics
// payload — this library has no per-file scan to time).
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level is the facade's severity axis.
type Level int

const (
	Off Level = iota
	Error
	Warn
	Info
	Debug
)

func (l Level) String() string {
	switch l {
	case Error:
		return "ERROR"
	case Warn:
		return "WARN"
	case Info:
		return "INFO"
	case Debug:
		return "DEBUG"
	default:
		return "OFF"
	}
}

// Sink receives formatted log lines. Implementations must not block the
// caller for long; there are no suspension points on this library's hot
// path (spec §5).
type Sink interface {
	Log(level Level, component, message string)
}

type writerSink struct{ w io.Writer }

func (s writerSink) Log(level Level, component, message string) {
	fmt.Fprintf(s.w, "[%s] %s: %s\n", level, component, message)
}

// NewWriterSink builds a Sink that writes one line per call to w.
func NewWriterSink(w io.Writer) Sink { return writerSink{w: w} }

type nullSink struct{}

func (nullSink) Log(Level, string, string) {}

// NullSink discards every log line.
var NullSink Sink = nullSink{}

// Decision recorded in DESIGN.md: default level is Warn, not Error — a
// parsing library's expected-failure paths (bad user input) are routine,
// not worth a default-visible line, but conditions adjacent to programmer
// or metadata errors should surface without the caller opting in.
var (
	mu          sync.Mutex
	globalSink  Sink  = writerSink{w: os.Stdout}
	globalLevel Level = Warn
)

// SetSink replaces the process-wide sink. Per spec §7 this is a
// once-per-process operation: it is not safe to call concurrently with
// in-flight Logger.Log calls, mirroring the teacher's global observer
// assignment.
func SetSink(s Sink) {
	mu.Lock()
	defer mu.Unlock()
	globalSink = s
}

// SetLevel replaces the process-wide minimum level.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	globalLevel = l
}

func currentSink() Sink {
	mu.Lock()
	defer mu.Unlock()
	return globalSink
}

func currentLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return globalLevel
}

// Logger is a thin, nil-safe handle passed by value into components, the
// same way the teacher threads an optional *observability.StandardObserver
// through every validator. A nil *Logger is valid and logs nothing.
type Logger struct {
	component string
}

// New returns a Logger tagged with a component name for its log lines.
func New(component string) *Logger { return &Logger{component: component} }

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil {
		return
	}
	if level > currentLevel() {
		return
	}
	currentSink().Log(level, l.component, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) { l.log(Error, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.log(Warn, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.log(Info, format, args...) }
func (l *Logger) Debugf(format string, args ...any) { l.log(Debug, format, args...) }
