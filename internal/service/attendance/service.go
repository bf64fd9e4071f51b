package attendance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/newrest-ops/attendance-backend-go/internal/domain/attendance"
	"github.com/newrest-ops/attendance-backend-go/internal/domain/worker"
	"github.com/newrest-ops/attendance-backend-go/internal/pkg/clock"
	"github.com/newrest-ops/attendance-backend-go/internal/pkg/geo"
)

// AttendanceServiceImpl drives the check-in/check-out state machine. The
// tracking cell read through the Store is the only attendance truth; the
// service re-reads it before every decision and never retries a failed
// store call; the user re-initiates instead.
type AttendanceServiceImpl struct {
	workers  worker.Repository
	store    attendance.Store
	geofence *geo.Validator
	pending  *PendingTracker
	clock    clock.Clock
}

func NewAttendanceService(
	workers worker.Repository,
	store attendance.Store,
	geofence *geo.Validator,
	pending *PendingTracker,
	clk clock.Clock,
) attendance.Service {
	return &AttendanceServiceImpl{
		workers:  workers,
		store:    store,
		geofence: geofence,
		pending:  pending,
		clock:    clk,
	}
}

// resolveWorker authenticates the identity against the registry. A nil
// Decision pointer means the worker is active and the intent may proceed.
func (s *AttendanceServiceImpl) resolveWorker(ctx context.Context, identity string) (worker.Worker, *attendance.Decision) {
	w, err := s.workers.FindByIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return worker.Worker{}, &attendance.Decision{Outcome: attendance.OutcomeWorkerUnknown}
		}
		return worker.Worker{}, &attendance.Decision{Outcome: attendance.OutcomeStoreFailed, Cause: err}
	}
	if !w.Active() {
		return worker.Worker{}, &attendance.Decision{
			Outcome:    attendance.OutcomeWorkerInactive,
			WorkerName: w.Name,
		}
	}
	return w, nil
}

// RequestCheckIn implements attendance.Service.
func (s *AttendanceServiceImpl) RequestCheckIn(ctx context.Context, identity string) attendance.Decision {
	w, rejected := s.resolveWorker(ctx, identity)
	if rejected != nil {
		return *rejected
	}

	rec, err := s.store.DayRecord(ctx, w.Name, s.clock.Now())
	if err != nil {
		slog.Error("check-in status read failed", "worker", w.Name, "error", err)
		return attendance.Decision{Outcome: attendance.OutcomeStoreFailed, WorkerName: w.Name, Cause: err}
	}

	switch rec.Status {
	case attendance.StatusCheckedIn:
		// Idempotent no-op: no pending action, no write.
		return attendance.Decision{
			Outcome:     attendance.OutcomeAlreadyCheckedIn,
			WorkerName:  w.Name,
			Status:      rec.Status,
			CheckInTime: rec.CheckIn,
		}
	case attendance.StatusComplete:
		return shiftCompleteDecision(w.Name, rec)
	}

	pa := s.pending.Set(identity, ActionCheckIn, w.Name, s.clock.Now())
	slog.Info("check-in pending location", "worker", w.Name, "action_id", pa.ID)

	return attendance.Decision{
		Outcome:      attendance.OutcomeLocationRequested,
		WorkerName:   w.Name,
		Status:       rec.Status,
		RadiusMeters: s.geofence.RadiusMeters(),
	}
}

// RequestCheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) RequestCheckOut(ctx context.Context, identity string) attendance.Decision {
	w, rejected := s.resolveWorker(ctx, identity)
	if rejected != nil {
		return *rejected
	}

	rec, err := s.store.DayRecord(ctx, w.Name, s.clock.Now())
	if err != nil {
		slog.Error("check-out status read failed", "worker", w.Name, "error", err)
		return attendance.Decision{Outcome: attendance.OutcomeStoreFailed, WorkerName: w.Name, Cause: err}
	}

	switch rec.Status {
	case attendance.StatusComplete:
		return shiftCompleteDecision(w.Name, rec)
	case attendance.StatusCheckedIn:
		// Open shift, the intent may proceed.
	default:
		return attendance.Decision{
			Outcome:    attendance.OutcomeNotCheckedIn,
			WorkerName: w.Name,
			Status:     rec.Status,
		}
	}

	pa := s.pending.Set(identity, ActionCheckOut, w.Name, s.clock.Now())
	slog.Info("check-out pending location", "worker", w.Name, "action_id", pa.ID)

	return attendance.Decision{
		Outcome:      attendance.OutcomeLocationRequested,
		WorkerName:   w.Name,
		Status:       rec.Status,
		CheckInTime:  rec.CheckIn,
		RadiusMeters: s.geofence.RadiusMeters(),
	}
}

// ConfirmLocation implements attendance.Service. One location attempt per
// intent: whatever the proof yields, the pending action is consumed.
func (s *AttendanceServiceImpl) ConfirmLocation(ctx context.Context, identity string, lat, lon float64) attendance.Decision {
	pa, ok := s.pending.Get(identity)
	if !ok {
		// A proof nobody asked for. Ignore quietly.
		return attendance.Decision{Outcome: attendance.OutcomeNoPendingAction}
	}
	defer s.pending.Clear(identity)

	res := s.geofence.Check(lat, lon)
	if res.Failed() {
		slog.Warn("geofence check failed", "worker", pa.WorkerName, "action_id", pa.ID, "error", res.Err)
		return attendance.Decision{
			Outcome:    attendance.OutcomeLocationInvalid,
			WorkerName: pa.WorkerName,
			Cause:      res.Err,
		}
	}
	if !res.IsWithin {
		slog.Info("location outside geofence",
			"worker", pa.WorkerName,
			"action_id", pa.ID,
			"distance_m", res.DistanceMeters,
			"radius_m", res.RadiusMeters)
		return attendance.Decision{
			Outcome:        attendance.OutcomeOutsideZone,
			WorkerName:     pa.WorkerName,
			DistanceMeters: res.DistanceMeters,
			RadiusMeters:   res.RadiusMeters,
		}
	}

	now := s.clock.Now()
	clockTime := now.Format(attendance.ClockLayout)

	if pa.Action == ActionCheckOut {
		return s.commitCheckOut(ctx, pa, now, clockTime)
	}
	return s.commitCheckIn(ctx, pa, now, clockTime)
}

func (s *AttendanceServiceImpl) commitCheckIn(ctx context.Context, pa PendingAction, date time.Time, clockTime string) attendance.Decision {
	if err := s.store.WriteCheckIn(ctx, pa.WorkerName, date, clockTime); err != nil {
		slog.Error("check-in write failed", "worker", pa.WorkerName, "action_id", pa.ID, "error", err)
		return attendance.Decision{Outcome: attendance.OutcomeStoreFailed, WorkerName: pa.WorkerName, Cause: err}
	}

	slog.Info("checked in", "worker", pa.WorkerName, "time", clockTime)
	return attendance.Decision{
		Outcome:     attendance.OutcomeCheckedIn,
		WorkerName:  pa.WorkerName,
		Status:      attendance.StatusCheckedIn,
		CheckInTime: clockTime,
	}
}

func (s *AttendanceServiceImpl) commitCheckOut(ctx context.Context, pa PendingAction, date time.Time, clockTime string) attendance.Decision {
	// Re-read for the open check-in time so the result can report the
	// full shift. The write below still validates the cell state itself.
	rec, err := s.store.DayRecord(ctx, pa.WorkerName, date)
	if err != nil {
		slog.Error("check-out status read failed", "worker", pa.WorkerName, "action_id", pa.ID, "error", err)
		return attendance.Decision{Outcome: attendance.OutcomeStoreFailed, WorkerName: pa.WorkerName, Cause: err}
	}

	if err := s.store.WriteCheckOut(ctx, pa.WorkerName, date, clockTime); err != nil {
		slog.Error("check-out write failed", "worker", pa.WorkerName, "action_id", pa.ID, "error", err)
		return attendance.Decision{Outcome: attendance.OutcomeStoreFailed, WorkerName: pa.WorkerName, Cause: err}
	}

	closed := attendance.ParseDayCell(attendance.CheckOutCell(rec.CheckIn, clockTime))
	worked := ""
	if d, ok := closed.Worked(); ok {
		worked = attendance.FormatWorked(d)
	}

	slog.Info("checked out", "worker", pa.WorkerName, "time", clockTime, "worked", worked)
	return attendance.Decision{
		Outcome:      attendance.OutcomeCheckedOut,
		WorkerName:   pa.WorkerName,
		Status:       attendance.StatusComplete,
		CheckInTime:  rec.CheckIn,
		CheckOutTime: clockTime,
		WorkedToday:  worked,
	}
}

// Status implements attendance.Service.
func (s *AttendanceServiceImpl) Status(ctx context.Context, identity string) attendance.Decision {
	w, rejected := s.resolveWorker(ctx, identity)
	if rejected != nil {
		return *rejected
	}

	rec, err := s.store.DayRecord(ctx, w.Name, s.clock.Now())
	if err != nil {
		slog.Error("status read failed", "worker", w.Name, "error", err)
		return attendance.Decision{Outcome: attendance.OutcomeStoreFailed, WorkerName: w.Name, Cause: err}
	}

	d := attendance.Decision{
		Outcome:      attendance.OutcomeStatus,
		WorkerName:   w.Name,
		Status:       rec.Status,
		CheckInTime:  rec.CheckIn,
		CheckOutTime: rec.CheckOut,
	}
	if worked, ok := rec.Worked(); ok {
		d.WorkedToday = attendance.FormatWorked(worked)
	}
	return d
}

func shiftCompleteDecision(workerName string, rec attendance.DayRecord) attendance.Decision {
	worked := ""
	if d, ok := rec.Worked(); ok {
		worked = attendance.FormatWorked(d)
	}
	return attendance.Decision{
		Outcome:      attendance.OutcomeShiftComplete,
		WorkerName:   workerName,
		Status:       rec.Status,
		CheckInTime:  rec.CheckIn,
		CheckOutTime: rec.CheckOut,
		WorkedToday:  worked,
	}
}
