package upload

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRejectsDuplicateIDs(t *testing.T) {
	r := NewRegistry()

	s, err := r.Create("id-1", KindProfile)
	require.NoError(t, err)
	require.NotNil(t, s)

	_, err = r.Create("id-1", KindClinic)
	assert.ErrorIs(t, err, ErrDuplicateSession)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryGetAfterRemove(t *testing.T) {
	r := NewRegistry()

	s, err := r.Create("id-2", KindGeneral)
	require.NoError(t, err)

	s.finish(StateCompleted)

	assert.Nil(t, r.Get("id-2"))
	assert.Equal(t, 0, r.Len())

	// the id is free again once the session reached a terminal state
	_, err = r.Create("id-2", KindGeneral)
	assert.NoError(t, err)
}

func TestRegistryRemoveIsIdempotent(t *testing.T) {
	r := NewRegistry()

	s, err := r.Create("id-3", KindDoctor)
	require.NoError(t, err)

	// finishing twice, from any mix of callers, leaves the same state
	s.finish(StateCancelled)
	s.finish(StateFailed)
	r.remove("id-3")

	assert.Equal(t, StateCancelled, s.State(), "first terminal state wins")
	assert.Equal(t, 0, r.Len())
}

func TestRegistryCancelSession(t *testing.T) {
	r := NewRegistry()

	s, err := r.Create("id-4", KindClinic)
	require.NoError(t, err)

	require.NoError(t, r.CancelSession("id-4"))
	assert.True(t, s.Cancel.Fired())
	assert.Equal(t, StateCancelled, s.State())
	assert.Nil(t, r.Get("id-4"))

	// cancelling again finds no session
	assert.ErrorIs(t, r.CancelSession("id-4"), ErrSessionNotFound)
}

func TestRegistryConcurrentCreate(t *testing.T) {
	r := NewRegistry()

	const workers = 32
	var wg sync.WaitGroup
	created := make(chan *Session, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s, err := r.Create("same-id", KindGeneral); err == nil {
				created <- s
			}
		}()
	}
	wg.Wait()
	close(created)

	var n int
	for range created {
		n++
	}
	assert.Equal(t, 1, n, "at most one live session per id")
	assert.Equal(t, 1, r.Len())
}
