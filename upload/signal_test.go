package upload

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignalTriggerIsIdempotent(t *testing.T) {
	s := NewSignal()

	var fired int32
	s.Subscribe(func() { atomic.AddInt32(&fired, 1) })

	s.Trigger()
	s.Trigger()
	s.Trigger()

	assert.True(t, s.Fired())
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired), "subscribers are notified exactly once")

	select {
	case <-s.Done():
	default:
		t.Fatal("Done channel must be closed after trigger")
	}
}

func TestSignalSubscribeAfterFire(t *testing.T) {
	s := NewSignal()
	s.Trigger()

	var called bool
	s.Subscribe(func() { called = true })

	assert.True(t, called, "late subscribers run immediately")
}

func TestSignalMultipleSubscribers(t *testing.T) {
	s := NewSignal()

	var n int32
	for i := 0; i < 5; i++ {
		s.Subscribe(func() { atomic.AddInt32(&n, 1) })
	}

	s.Trigger()
	assert.Equal(t, int32(5), atomic.LoadInt32(&n))
}

func TestMonitorTriggersOnDisconnect(t *testing.T) {
	s := NewSignal()
	ctx, cancel := context.WithCancel(context.Background())

	m := Watch(ctx, s)
	defer m.Stop()

	cancel()

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("monitor did not trigger the signal on context cancellation")
	}
}

func TestMonitorStopUnregisters(t *testing.T) {
	s := NewSignal()
	ctx, cancel := context.WithCancel(context.Background())

	m := Watch(ctx, s)
	m.Stop()
	m.Stop() // idempotent

	cancel()

	time.Sleep(20 * time.Millisecond)
	assert.False(t, s.Fired(), "a stopped monitor must not trigger on later disconnects")
}
