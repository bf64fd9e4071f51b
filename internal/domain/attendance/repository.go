package attendance

import (
	"context"
	"time"
)

// Store is the gateway to the spreadsheet-backed attendance datastore.
// Resolving the current period's sheet and today's column is the store's
// job; callers only supply a stable date key. Reads must reflect the most
// recently committed write; the state machine re-reads before every
// decision and keeps no cache.
type Store interface {
	// DayRecord reads and decodes the worker's attendance cell for the
	// given date. A worker with no row yields StatusNotRegistered, not
	// an error; errors mean the lookup itself failed.
	DayRecord(ctx context.Context, workerName string, date time.Time) (DayRecord, error)

	// WriteCheckIn sets the cell to "<clockTime>-". Overwriting with the
	// same time is a no-op in effect, so the call is idempotent by value.
	WriteCheckIn(ctx context.Context, workerName string, date time.Time, clockTime string) error

	// WriteCheckOut closes an open "<in>-" cell to "<in>-<clockTime>".
	// A cell that is already complete is never overwritten
	// (ErrDayComplete); a cell with no open check-in fails with
	// ErrNotCheckedIn.
	WriteCheckOut(ctx context.Context, workerName string, date time.Time, clockTime string) error
}
