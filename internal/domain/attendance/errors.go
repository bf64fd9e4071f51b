package attendance

import "errors"

// Attendance store errors. The gateway must distinguish "write did not
// happen" from "write happened, response lost"; these sentinels cover the
// cases the writers can detect before touching the cell.
var (
	ErrNotCheckedIn    = errors.New("no open check-in to close")
	ErrDayComplete     = errors.New("attendance for today is already complete")
	ErrCellUnparseable = errors.New("attendance cell holds unrecognized text")
)
