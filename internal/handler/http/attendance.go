package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/newrest-ops/attendance-backend-go/internal/domain/attendance"
	"github.com/newrest-ops/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Location(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// identityFromContext extracts the stable worker identity from the
// request token's claims.
func identityFromContext(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		slog.Error("failed to extract claims from context", "error", err)
		return "", false
	}
	identity, ok := claims["worker_id"].(string)
	if !ok || identity == "" {
		return "", false
	}
	return identity, true
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r)
	if !ok {
		response.Unauthorized(w, "worker_id claim is missing or invalid")
		return
	}

	response.RenderDecision(w, h.attendanceService.RequestCheckIn(r.Context(), identity))
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r)
	if !ok {
		response.Unauthorized(w, "worker_id claim is missing or invalid")
		return
	}

	response.RenderDecision(w, h.attendanceService.RequestCheckOut(r.Context(), identity))
}

// Location implements AttendanceHandler. It consumes the GPS proof for
// whatever intent is pending for the caller.
func (h *attendanceHandlerImpl) Location(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r)
	if !ok {
		response.Unauthorized(w, "worker_id claim is missing or invalid")
		return
	}

	var req attendance.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("failed to decode location payload", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	response.RenderDecision(w, h.attendanceService.ConfirmLocation(r.Context(), identity, req.Latitude, req.Longitude))
}

// Status implements AttendanceHandler.
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r)
	if !ok {
		response.Unauthorized(w, "worker_id claim is missing or invalid")
		return
	}

	response.RenderDecision(w, h.attendanceService.Status(r.Context(), identity))
}
