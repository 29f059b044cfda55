// Package logging provides structured JSON logging for pdgid components.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ParseLevel maps a level name to a Level. Unknown names return an error
// along with LevelWarn.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := levelRank[l]; !ok {
		return LevelWarn, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// Event represents a structured log event
type Event struct {
	Timestamp string         `json:"ts"`
	Level     Level          `json:"level"`
	Component string         `json:"component"`
	Event     string         `json:"event"`
	Run       string         `json:"run,omitempty"`
	Duration  int64          `json:"duration_ms,omitempty"`
	Error     string         `json:"error,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

var (
	mu        sync.Mutex
	out       io.Writer = os.Stderr
	threshold           = LevelWarn
)

// SetOutput redirects all loggers. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
}

// SetLevel sets the minimum level that is emitted.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	threshold = l
}

// Enabled reports whether events at l are emitted.
func Enabled(l Level) bool {
	mu.Lock()
	defer mu.Unlock()
	return levelRank[l] >= levelRank[threshold]
}

func emit(e Event) {
	if !Enabled(e.Level) {
		return
	}
	data, _ := json.Marshal(e)
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, string(data))
}

// Logger provides structured logging
type Logger struct {
	component string
	run       string
}

// New creates a new logger for a component, tagged with the process run ID.
func New(component string) *Logger {
	return &Logger{
		component: component,
		run:       RunID(),
	}
}

// WithRun sets the run context
func (l *Logger) WithRun(run string) *Logger {
	return &Logger{
		component: l.component,
		run:       run,
	}
}

func (l *Logger) log(level Level, event string, extra map[string]any, err error) {
	e := Event{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Component: l.component,
		Event:     event,
		Run:       l.run,
		Extra:     extra,
	}
	if err != nil {
		e.Error = err.Error()
	}
	emit(e)
}

// Debug logs a debug event
func (l *Logger) Debug(event string, extra map[string]any) {
	l.log(LevelDebug, event, extra, nil)
}

// Info logs an info event
func (l *Logger) Info(event string, extra map[string]any) {
	l.log(LevelInfo, event, extra, nil)
}

// Warn logs a warning event
func (l *Logger) Warn(event string, extra map[string]any, err error) {
	l.log(LevelWarn, event, extra, err)
}

// Error logs an error event
func (l *Logger) Error(event string, extra map[string]any, err error) {
	l.log(LevelError, event, extra, err)
}

// TimedEvent logs an event with duration
func (l *Logger) TimedEvent(event string, start time.Time, extra map[string]any) {
	emit(Event{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     LevelInfo,
		Component: l.component,
		Event:     event,
		Run:       l.run,
		Duration:  time.Since(start).Milliseconds(),
		Extra:     extra,
	})
}
