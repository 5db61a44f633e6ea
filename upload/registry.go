package upload

import "sync"

// State of an in-flight upload session.
type State int

const (
	StateValidating State = iota
	StateUploading
	StateCommitting
	StateCompleted
	StateCancelled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateUploading:
		return "uploading"
	case StateCommitting:
		return "committing"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Session tracks one in-flight upload request. It is owned by the request
// processing it; the only external mutation is Cancel via the registry.
type Session struct {
	ID     string
	Kind   Kind
	Cancel *Signal

	mu    sync.Mutex
	state State

	cleanup sync.Once
	reg     *Registry
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) advance(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// finish moves the session to a terminal state and removes it from the
// registry. Exactly one caller wins; later calls are no-ops, which makes it
// safe to invoke from every exit path and from the cancellation endpoint
// concurrently.
func (s *Session) finish(st State) {
	s.cleanup.Do(func() {
		s.advance(st)
		s.reg.remove(s.ID)
	})
}

// Registry owns the set of in-flight upload sessions. One instance is
// created at server start and injected into the handlers.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create registers a new session. At most one live session may exist per id.
func (r *Registry) Create(id string, kind Kind) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; ok {
		return nil, ErrDuplicateSession
	}

	s := &Session{
		ID:     id,
		Kind:   kind,
		Cancel: NewSignal(),
		state:  StateValidating,
		reg:    r,
	}
	r.sessions[id] = s
	return s, nil
}

// Get returns the live session for id, or nil.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[id]
}

// CancelSession triggers cancellation for a known session id and removes it
// from the registry. The idempotent trigger/remove pair makes it safe to
// race with the owning request's own cleanup.
func (r *Registry) CancelSession(id string) error {
	s := r.Get(id)
	if s == nil {
		return ErrSessionNotFound
	}

	s.Cancel.Trigger()
	s.finish(StateCancelled)
	return nil
}

// remove is idempotent, removing an absent id is a no-op.
func (r *Registry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len reports the number of in-flight sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
