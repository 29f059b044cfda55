package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(level)
	t.Cleanup(func() {
		SetOutput(nil)
		SetLevel(LevelWarn)
	})
	return &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []Event {
	t.Helper()
	var events []Event
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e Event
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		events = append(events, e)
	}
	return events
}

func TestLoggerCreation(t *testing.T) {
	logger := New("scan")

	assert.Equal(t, "scan", logger.component)
	assert.Equal(t, RunID(), logger.run)
	assert.Equal(t, "other", logger.WithRun("other").run)
}

func TestLevelFilter(t *testing.T) {
	buf := capture(t, LevelWarn)
	logger := New("test")

	logger.Debug("hidden_debug", nil)
	logger.Info("hidden_info", nil)
	logger.Warn("shown_warn", nil, nil)
	logger.Error("shown_error", map[string]any{"code": 11}, errors.New("boom"))

	events := decodeLines(t, buf)
	require.Len(t, events, 2)
	assert.Equal(t, "shown_warn", events[0].Event)
	assert.Equal(t, LevelWarn, events[0].Level)
	assert.Equal(t, "shown_error", events[1].Event)
	assert.Equal(t, "boom", events[1].Error)
	assert.Equal(t, float64(11), events[1].Extra["code"])
}

func TestEventSerialization(t *testing.T) {
	event := Event{
		Timestamp: "2024-01-01T00:00:00Z",
		Level:     LevelInfo,
		Component: "test",
		Event:     "test_event",
		Run:       "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Duration:  100,
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "info", parsed["level"])
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", parsed["run"])
	assert.Equal(t, float64(100), parsed["duration_ms"])
	assert.NotContains(t, parsed, "error")
	assert.NotContains(t, parsed, "extra")
}

func TestTimedEvent(t *testing.T) {
	buf := capture(t, LevelInfo)

	start := time.Now().Add(-50 * time.Millisecond)
	New("selftest").TimedEvent("selftest_done", start, map[string]any{"checks": 6})

	events := decodeLines(t, buf)
	require.Len(t, events, 1)
	assert.Equal(t, "selftest", events[0].Component)
	assert.GreaterOrEqual(t, events[0].Duration, int64(50))
}

func TestTimedEventFilteredAtWarn(t *testing.T) {
	buf := capture(t, LevelWarn)
	New("scan").TimedEvent("scan_done", time.Now(), nil)
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" INFO ", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
