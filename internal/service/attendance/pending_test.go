package attendance

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingTracker_SetGetClear(t *testing.T) {
	tr := NewPendingTracker()
	now := time.Now()

	_, ok := tr.Get("42")
	assert.False(t, ok)

	set := tr.Set("42", ActionCheckIn, "Maria P", now)
	assert.NotEmpty(t, set.ID)

	got, ok := tr.Get("42")
	require.True(t, ok)
	assert.Equal(t, set, got)
	assert.Equal(t, ActionCheckIn, got.Action)
	assert.Equal(t, "Maria P", got.WorkerName)

	tr.Clear("42")
	_, ok = tr.Get("42")
	assert.False(t, ok)

	// Clearing again is harmless.
	tr.Clear("42")
}

func TestPendingTracker_LastIntentWins(t *testing.T) {
	tr := NewPendingTracker()
	now := time.Now()

	tr.Set("42", ActionCheckIn, "Maria P", now)
	second := tr.Set("42", ActionCheckOut, "Maria P", now.Add(time.Second))

	got, ok := tr.Get("42")
	require.True(t, ok)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, ActionCheckOut, got.Action)
	assert.Equal(t, 1, tr.Len())
}

func TestPendingTracker_IdentitiesAreIndependent(t *testing.T) {
	tr := NewPendingTracker()
	now := time.Now()

	tr.Set("42", ActionCheckIn, "Maria P", now)
	tr.Set("43", ActionCheckOut, "Nikos K", now)

	tr.Clear("42")

	_, ok := tr.Get("42")
	assert.False(t, ok)
	got, ok := tr.Get("43")
	require.True(t, ok)
	assert.Equal(t, "Nikos K", got.WorkerName)
}

func TestPendingTracker_ConcurrentAccess(t *testing.T) {
	tr := NewPendingTracker()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Set("42", ActionCheckIn, "Maria P", now)
			tr.Get("42")
			tr.Clear("42")
		}()
	}
	wg.Wait()
}
