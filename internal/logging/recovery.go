package logging

import (
	"fmt"
	"runtime/debug"
	"time"
)

// RecoveryHandler turns panics in worker goroutines into logged errors.
type RecoveryHandler struct {
	Component string
	OnPanic   func(err any, stack string)
}

// NewRecoveryHandler creates a recovery handler for a component
func NewRecoveryHandler(component string) *RecoveryHandler {
	return &RecoveryHandler{
		Component: component,
	}
}

// WrapError runs fn and converts a panic into an error naming the component.
func (r *RecoveryHandler) WrapError(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = r.handlePanic(rec, string(debug.Stack()))
		}
	}()
	return fn()
}

func (r *RecoveryHandler) handlePanic(rec any, stack string) error {
	emit(Event{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     LevelError,
		Component: r.Component,
		Event:     "panic_recovered",
		Run:       RunID(),
		Error:     fmt.Sprintf("%v", rec),
		Extra: map[string]any{
			"stack": stack,
		},
	})

	if r.OnPanic != nil {
		r.OnPanic(rec, stack)
	}

	return fmt.Errorf("panic in %s: %v", r.Component, rec)
}
