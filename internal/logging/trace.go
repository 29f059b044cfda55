package logging

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"
)

type contextKey string

const runIDKey contextKey = "run_id"

var (
	runID     string
	runIDOnce sync.Once
)

// NewRunID generates a sortable unique run ID.
func NewRunID() string {
	return ulid.Make().String()
}

// RunID returns the process-wide run ID, generated on first use.
func RunID() string {
	runIDOnce.Do(func() {
		runID = NewRunID()
	})
	return runID
}

// WithRunID adds a run ID to context.
// If id is empty, uses the process run ID.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = RunID()
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run ID from context.
// Returns empty string if not present.
func RunIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(runIDKey).(string); ok {
		return v
	}
	return ""
}

// FromContext returns a logger tagged with the context's run ID when present.
func FromContext(ctx context.Context, component string) *Logger {
	l := New(component)
	if id := RunIDFromContext(ctx); id != "" {
		return l.WithRun(id)
	}
	return l
}
