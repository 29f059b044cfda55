package runtime

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShutdownManager(t *testing.T) {
	m := NewShutdownManager(context.Background(), 2*time.Second)

	require.NotNil(t, m)
	assert.Equal(t, 2*time.Second, m.timeout)
	assert.NoError(t, m.Context().Err())
}

func TestShutdownCancelsContext(t *testing.T) {
	m := NewShutdownManager(context.Background(), time.Second)

	require.NoError(t, m.Shutdown())

	assert.ErrorIs(t, m.Context().Err(), context.Canceled)
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownRunsHandlersLIFO(t *testing.T) {
	m := NewShutdownManager(context.Background(), time.Second)

	var order []string
	m.Register("first", func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	m.Register("second", func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, m.Shutdown())
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestShutdownOnce(t *testing.T) {
	m := NewShutdownManager(context.Background(), time.Second)

	calls := 0
	m.Register("count", func(ctx context.Context) error {
		calls++
		return nil
	})

	m.Shutdown()
	m.Shutdown()
	assert.Equal(t, 1, calls)
}

func TestShutdownCollectsErrors(t *testing.T) {
	m := NewShutdownManager(context.Background(), time.Second)

	boom := errors.New("boom")
	m.Register("ok", func(ctx context.Context) error { return nil })
	m.Register("broken", func(ctx context.Context) error { return boom })

	err := m.Shutdown()
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
	assert.ErrorIs(t, m.Shutdown(), boom)
}

func TestParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	m := NewShutdownManager(parent, time.Second)

	cancel()
	assert.ErrorIs(t, m.Context().Err(), context.Canceled)
}

func TestListenForSignals(t *testing.T) {
	m := NewShutdownManager(context.Background(), time.Second)
	stop := m.ListenForSignals()
	defer stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGINT))

	select {
	case <-m.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown not triggered by SIGINT")
	}
	assert.Error(t, m.Context().Err())
}

func TestListenStop(t *testing.T) {
	m := NewShutdownManager(context.Background(), time.Second)
	stop := m.ListenForSignals()
	stop()
	stop()

	assert.NoError(t, m.Context().Err())
}
