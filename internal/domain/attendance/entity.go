package attendance

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Status is a worker's daily attendance state, derived from the tracking
// cell text. It is never stored; the cell is the sole source of truth.
type Status string

const (
	// StatusNotRegistered means the worker has no row in the current
	// period's tracking sheet.
	StatusNotRegistered Status = "NOT_REGISTERED"
	// StatusNotCheckedIn means the cell is empty.
	StatusNotCheckedIn Status = "NOT_CHECKED_IN"
	// StatusCheckedIn means the cell holds "HH:MM-" with no close time.
	StatusCheckedIn Status = "CHECKED_IN"
	// StatusComplete means the cell holds "HH:MM-HH:MM".
	StatusComplete Status = "COMPLETE"
	// StatusUnknown means the cell holds text matching no known encoding.
	StatusUnknown Status = "UNKNOWN"
)

// ClockLayout is the time.Format layout for cell timestamps: 24-hour
// clock, zero-padded.
const ClockLayout = "15:04"

var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// DayRecord is one worker's attendance for one day, decoded from a cell.
type DayRecord struct {
	Status   Status
	CheckIn  string // "HH:MM", set for CHECKED_IN and COMPLETE
	CheckOut string // "HH:MM", set for COMPLETE
	Raw      string
}

// ParseDayCell decodes the attendance cell encoding. Empty means not
// checked in, "HH:MM-" means checked in, "HH:MM-HH:MM" means the shift
// is complete. Anything else is UNKNOWN and left untouched by writers.
func ParseDayCell(raw string) DayRecord {
	rec := DayRecord{Raw: raw}

	switch {
	case raw == "":
		rec.Status = StatusNotCheckedIn
	case strings.HasSuffix(raw, "-"):
		in := strings.TrimSuffix(raw, "-")
		if !clockRe.MatchString(in) {
			rec.Status = StatusUnknown
			return rec
		}
		rec.Status = StatusCheckedIn
		rec.CheckIn = in
	case strings.Count(raw, "-") == 1:
		parts := strings.SplitN(raw, "-", 2)
		if !clockRe.MatchString(parts[0]) || !clockRe.MatchString(parts[1]) {
			rec.Status = StatusUnknown
			return rec
		}
		rec.Status = StatusComplete
		rec.CheckIn = parts[0]
		rec.CheckOut = parts[1]
	default:
		rec.Status = StatusUnknown
	}

	return rec
}

// CheckInCell encodes an open shift: the check-in time with a trailing
// separator and no close time.
func CheckInCell(clockTime string) string {
	return clockTime + "-"
}

// CheckOutCell encodes a completed shift.
func CheckOutCell(checkIn, checkOut string) string {
	return checkIn + "-" + checkOut
}

// Worked returns the shift duration for a COMPLETE record. The second
// return is false when the record has no complete time pair.
func (r DayRecord) Worked() (time.Duration, bool) {
	if r.Status != StatusComplete {
		return 0, false
	}
	in, err := time.Parse(ClockLayout, r.CheckIn)
	if err != nil {
		return 0, false
	}
	out, err := time.Parse(ClockLayout, r.CheckOut)
	if err != nil {
		return 0, false
	}
	d := out.Sub(in)
	if d < 0 {
		// Overnight shifts are not tracked per day; clamp to zero like
		// the original sheet tooling did.
		d = 0
	}
	return d, true
}

// FormatWorked renders a duration the way the sheet reports it: "8h 30m".
func FormatWorked(d time.Duration) string {
	total := int(d.Minutes())
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}
