package upload

import (
	"context"
	"sync"
)

// Monitor binds a session's cancellation signal to the lifetime of the
// inbound request: a client disconnect cancels the request context, which
// triggers the signal. Stop must be called when the request completes
// normally so the watcher goroutine does not linger.
type Monitor struct {
	stop chan struct{}
	once sync.Once
}

// Watch starts watching ctx and triggers sig when it is cancelled.
func Watch(ctx context.Context, sig *Signal) *Monitor {
	m := &Monitor{stop: make(chan struct{})}

	go func() {
		select {
		case <-ctx.Done():
			sig.Trigger()
		case <-m.stop:
		}
	}()

	return m
}

// Stop detaches the monitor. Idempotent.
func (m *Monitor) Stop() {
	m.once.Do(func() {
		close(m.stop)
	})
}
