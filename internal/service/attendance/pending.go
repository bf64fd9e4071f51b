package attendance

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Action is the kind of intent a pending action carries.
type Action string

const (
	ActionCheckIn  Action = "CHECK_IN"
	ActionCheckOut Action = "CHECK_OUT"
)

// PendingAction is a recorded intent awaiting a location proof. It lives
// only in process memory; a restart abandons it. The ID exists for log
// correlation only.
type PendingAction struct {
	ID         string
	Identity   string
	Action     Action
	WorkerName string
	CreatedAt  time.Time
}

// PendingTracker holds at most one in-flight action per identity.
// Mutation is atomic per identity; a second intent for the same identity
// silently replaces the first (last-intent-wins, no queueing).
type PendingTracker struct {
	mu      sync.Mutex
	actions map[string]PendingAction
}

func NewPendingTracker() *PendingTracker {
	return &PendingTracker{actions: make(map[string]PendingAction)}
}

// Set records a pending action for the identity, replacing any existing one.
func (t *PendingTracker) Set(identity string, action Action, workerName string, at time.Time) PendingAction {
	pa := PendingAction{
		ID:         uuid.NewString(),
		Identity:   identity,
		Action:     action,
		WorkerName: workerName,
		CreatedAt:  at,
	}

	t.mu.Lock()
	t.actions[identity] = pa
	t.mu.Unlock()

	return pa
}

// Get returns the identity's pending action, if any.
func (t *PendingTracker) Get(identity string) (PendingAction, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pa, ok := t.actions[identity]
	return pa, ok
}

// Clear removes the identity's pending action. Clearing an absent entry
// is a no-op.
func (t *PendingTracker) Clear(identity string) {
	t.mu.Lock()
	delete(t.actions, identity)
	t.mu.Unlock()
}

// Len reports how many identities currently have an action in flight.
func (t *PendingTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.actions)
}
