package attendance

import "context"

// Service is the attendance state machine. All operations key off the
// stable external identity the inbound layer authenticated; the caller
// must sequence "request → await proof → confirm" per identity before
// accepting a new intent from the same identity.
type Service interface {
	// RequestCheckIn opens a check-in intent. Idempotent when the worker
	// is already checked in or the shift is complete.
	RequestCheckIn(ctx context.Context, identity string) Decision

	// RequestCheckOut opens a check-out intent. Requires an open shift.
	RequestCheckOut(ctx context.Context, identity string) Decision

	// ConfirmLocation consumes the pending action for the identity with a
	// GPS proof, committing the corresponding write when the proof falls
	// inside the geofence. Every exit path clears the pending action.
	ConfirmLocation(ctx context.Context, identity string, lat, lon float64) Decision

	// Status reports the worker's current day record without changing
	// any state.
	Status(ctx context.Context, identity string) Decision
}
