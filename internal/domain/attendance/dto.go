package attendance

// ========================================
// ATTENDANCE DTOs
// ========================================

// LocationRequest carries a GPS proof from the handler layer. Coordinates
// are deliberately not range-checked here: classification is the geofence
// validator's job and out-of-range values simply land outside the zone.
type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Outcome discriminates every result the state machine can produce, so
// callers branch on classified outcomes instead of parsing message text.
type Outcome string

const (
	// OutcomeLocationRequested: intent accepted, a pending action was
	// recorded and the caller must obtain a GPS proof from the user.
	OutcomeLocationRequested Outcome = "LOCATION_REQUESTED"
	// OutcomeCheckedIn: a check-in was committed to the store.
	OutcomeCheckedIn Outcome = "CHECKED_IN"
	// OutcomeCheckedOut: a check-out was committed to the store.
	OutcomeCheckedOut Outcome = "CHECKED_OUT"
	// OutcomeAlreadyCheckedIn: idempotent no-op, recorded time attached.
	OutcomeAlreadyCheckedIn Outcome = "ALREADY_CHECKED_IN"
	// OutcomeShiftComplete: today's shift is already closed.
	OutcomeShiftComplete Outcome = "SHIFT_COMPLETE"
	// OutcomeNotCheckedIn: check-out requested without an open shift.
	OutcomeNotCheckedIn Outcome = "NOT_CHECKED_IN"
	// OutcomeOutsideZone: the proof was computed fine but falls outside
	// the geofence. The user must re-initiate.
	OutcomeOutsideZone Outcome = "OUTSIDE_ZONE"
	// OutcomeLocationInvalid: the geofence check itself could not be
	// computed. Transient; the user should re-issue the intent.
	OutcomeLocationInvalid Outcome = "LOCATION_INVALID"
	// OutcomeNoPendingAction: a proof arrived with nothing awaiting it;
	// ignored without side effects.
	OutcomeNoPendingAction Outcome = "NO_PENDING_ACTION"
	// OutcomeStoreFailed: the store read or write failed; the user must
	// retry from the top. Never retried automatically.
	OutcomeStoreFailed Outcome = "STORE_FAILED"
	// OutcomeWorkerUnknown: the identity has no worker registration.
	OutcomeWorkerUnknown Outcome = "WORKER_UNKNOWN"
	// OutcomeWorkerInactive: the worker exists but is not active.
	OutcomeWorkerInactive Outcome = "WORKER_INACTIVE"
	// OutcomeStatus: plain status report, no state change.
	OutcomeStatus Outcome = "STATUS"
)

// Decision is the discriminated result of a state machine operation. The
// state machine never fails across its public surface; every path lands
// in an Outcome and the payload fields that outcome needs.
type Decision struct {
	Outcome    Outcome `json:"outcome"`
	WorkerName string  `json:"worker_name,omitempty"`

	// Day state, present for status reports and committed writes.
	Status       Status `json:"status,omitempty"`
	CheckInTime  string `json:"check_in_time,omitempty"`
	CheckOutTime string `json:"check_out_time,omitempty"`
	WorkedToday  string `json:"worked_today,omitempty"`

	// Geofence detail for OutcomeOutsideZone.
	DistanceMeters float64 `json:"distance_meters,omitempty"`
	RadiusMeters   float64 `json:"radius_meters,omitempty"`

	// Cause carries the underlying error for logging. It is never needed
	// to branch; the Outcome already classifies it.
	Cause error `json:"-"`
}
