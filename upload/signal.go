package upload

import "sync"

// Signal is a cooperative cancellation token bound to one upload session.
// Triggering is idempotent: subscribers are notified exactly once no matter
// how many times Trigger is called.
type Signal struct {
	mu    sync.Mutex
	fired bool
	done  chan struct{}
	subs  []func()
}

func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// Trigger fires the signal. Subsequent calls are no-ops.
func (s *Signal) Trigger() {
	s.mu.Lock()
	if s.fired {
		s.mu.Unlock()
		return
	}
	s.fired = true
	subs := s.subs
	s.subs = nil
	close(s.done)
	s.mu.Unlock()

	// callbacks run outside the lock, a subscriber may call back into
	// the signal
	for _, fn := range subs {
		fn()
	}
}

// Fired reports whether the signal has been triggered.
func (s *Signal) Fired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fired
}

// Done returns a channel closed when the signal fires, for select loops.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// Subscribe registers fn to run at most once: immediately if the signal
// already fired, on trigger otherwise.
func (s *Signal) Subscribe(fn func()) {
	s.mu.Lock()
	if s.fired {
		s.mu.Unlock()
		fn()
		return
	}
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}
