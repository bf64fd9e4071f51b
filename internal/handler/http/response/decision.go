package response

import (
	"fmt"
	"net/http"

	"github.com/newrest-ops/attendance-backend-go/internal/domain/attendance"
)

// RenderDecision maps state machine outcomes to HTTP responses. Handlers
// branch on the classified Outcome, never on error text.
func RenderDecision(w http.ResponseWriter, d attendance.Decision) {
	switch d.Outcome {
	case attendance.OutcomeLocationRequested:
		Accepted(w, "Share your location to continue", d)

	case attendance.OutcomeCheckedIn:
		SuccessWithMessage(w, fmt.Sprintf("Checked in at %s", d.CheckInTime), d)

	case attendance.OutcomeCheckedOut:
		SuccessWithMessage(w, fmt.Sprintf("Checked out at %s", d.CheckOutTime), d)

	case attendance.OutcomeAlreadyCheckedIn:
		SuccessWithMessage(w, fmt.Sprintf("Already checked in at %s", d.CheckInTime), d)

	case attendance.OutcomeShiftComplete:
		SuccessWithMessage(w, "Today's shift is already complete", d)

	case attendance.OutcomeStatus:
		Success(w, d)

	case attendance.OutcomeNoPendingAction:
		// Proof with nothing awaiting it: acknowledged, nothing done.
		SuccessWithMessage(w, "No action awaiting a location", d)

	case attendance.OutcomeNotCheckedIn:
		Conflict(w, "You need to check in first", d)

	case attendance.OutcomeOutsideZone:
		Conflict(w, fmt.Sprintf("You are %.0fm from the work location (allowed: %.0fm)", d.DistanceMeters, d.RadiusMeters), d)

	case attendance.OutcomeLocationInvalid:
		BadRequest(w, "Could not verify your location, please try again", nil)

	case attendance.OutcomeWorkerUnknown:
		NotFound(w, "Worker is not registered")

	case attendance.OutcomeWorkerInactive:
		Forbidden(w, "Worker account is not active")

	case attendance.OutcomeStoreFailed:
		BadGateway(w, "Attendance store is unavailable, please try again")

	default:
		InternalServerError(w, "Unhandled attendance outcome")
	}
}
