package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/newrest-ops/attendance-backend-go/internal/domain/attendance"
)

// Monthly tracking sheet layout: row 1 is the header (NAME, then one
// column per day of month), worker rows follow. Column B is day 1.
const (
	headerRows       = 1
	nameColumn       = 1
	monthlySheetRows = 100
	monthlySheetCols = 32
)

type AttendanceStore struct {
	client *Client
}

func NewAttendanceStore(client *Client) attendance.Store {
	return &AttendanceStore{client: client}
}

// monthlySheetTitle resolves the current period's worksheet name, e.g.
// "2025/8". Month is not zero padded.
func monthlySheetTitle(date time.Time) string {
	return fmt.Sprintf("%d/%d", date.Year(), int(date.Month()))
}

// dayColumn maps a date to its column: column B (2) is day 1.
func dayColumn(date time.Time) int {
	return date.Day() + 1
}

// columnLetter converts a 1-based column index to its A1 letter form.
func columnLetter(col int) string {
	s := ""
	for col > 0 {
		col--
		s = string(rune('A'+col%26)) + s
		col /= 26
	}
	return s
}

// cellRange builds a quoted single-cell A1 range. Titles like "2025/8"
// must be quoted or the API rejects the range.
func cellRange(title string, row, col int) string {
	return fmt.Sprintf("'%s'!%s%d", title, columnLetter(col), row)
}

// findWorkerRow scans the NAME column for the worker. Returns 0 when the
// worker has no row.
func (s *AttendanceStore) findWorkerRow(ctx context.Context, title, workerName string) (int, error) {
	rows, err := s.client.readRange(ctx, fmt.Sprintf("'%s'!A:A", title))
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		if i < headerRows {
			continue
		}
		if len(row) > 0 && fmt.Sprint(row[0]) == workerName {
			return i + 1, nil
		}
	}
	return 0, nil
}

// DayRecord implements attendance.Store. A missing monthly sheet or a
// missing worker row both decode to NOT_REGISTERED; only transport and
// API failures surface as errors.
func (s *AttendanceStore) DayRecord(ctx context.Context, workerName string, date time.Time) (attendance.DayRecord, error) {
	title := monthlySheetTitle(date)

	exists, err := s.client.sheetExists(ctx, title)
	if err != nil {
		return attendance.DayRecord{}, err
	}
	if !exists {
		return attendance.DayRecord{Status: attendance.StatusNotRegistered}, nil
	}

	row, err := s.findWorkerRow(ctx, title, workerName)
	if err != nil {
		return attendance.DayRecord{}, err
	}
	if row == 0 {
		return attendance.DayRecord{Status: attendance.StatusNotRegistered}, nil
	}

	values, err := s.client.readRange(ctx, cellRange(title, row, dayColumn(date)))
	if err != nil {
		return attendance.DayRecord{}, err
	}

	raw := ""
	if len(values) > 0 && len(values[0]) > 0 {
		raw = fmt.Sprint(values[0][0])
	}
	return attendance.ParseDayCell(raw), nil
}

// ensureMonthlySheet creates the period's worksheet with its header row
// when it does not exist yet.
func (s *AttendanceStore) ensureMonthlySheet(ctx context.Context, title string) error {
	exists, err := s.client.sheetExists(ctx, title)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := s.client.addSheet(ctx, title, monthlySheetRows, monthlySheetCols); err != nil {
		return err
	}

	header := make([]any, 0, monthlySheetCols)
	header = append(header, "NAME")
	for day := 1; day <= 31; day++ {
		header = append(header, fmt.Sprint(day))
	}
	return s.client.writeRow(ctx, fmt.Sprintf("'%s'!A1", title), header)
}

// ensureWorkerRow returns the worker's row, appending one after the last
// occupied row when missing.
func (s *AttendanceStore) ensureWorkerRow(ctx context.Context, title, workerName string) (int, error) {
	rows, err := s.client.readRange(ctx, fmt.Sprintf("'%s'!A:A", title))
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		if i < headerRows {
			continue
		}
		if len(row) > 0 && fmt.Sprint(row[0]) == workerName {
			return i + 1, nil
		}
	}

	next := len(rows) + 1
	if next <= headerRows+1 {
		next = headerRows + 1
	}
	if err := s.client.writeCell(ctx, cellRange(title, next, nameColumn), workerName); err != nil {
		return 0, err
	}
	return next, nil
}

// WriteCheckIn implements attendance.Store. The cell is overwritten with
// "<time>-"; writing the same time twice yields the same cell value, so
// the operation is idempotent in effect.
func (s *AttendanceStore) WriteCheckIn(ctx context.Context, workerName string, date time.Time, clockTime string) error {
	title := monthlySheetTitle(date)

	if err := s.ensureMonthlySheet(ctx, title); err != nil {
		return err
	}
	row, err := s.ensureWorkerRow(ctx, title, workerName)
	if err != nil {
		return err
	}

	return s.client.writeCell(ctx, cellRange(title, row, dayColumn(date)), attendance.CheckInCell(clockTime))
}

// WriteCheckOut implements attendance.Store. It appends the close time to
// an open "<in>-" cell and refuses every other cell state: a complete day
// is never overwritten.
func (s *AttendanceStore) WriteCheckOut(ctx context.Context, workerName string, date time.Time, clockTime string) error {
	title := monthlySheetTitle(date)

	exists, err := s.client.sheetExists(ctx, title)
	if err != nil {
		return err
	}
	if !exists {
		return attendance.ErrNotCheckedIn
	}

	row, err := s.findWorkerRow(ctx, title, workerName)
	if err != nil {
		return err
	}
	if row == 0 {
		return attendance.ErrNotCheckedIn
	}

	target := cellRange(title, row, dayColumn(date))
	values, err := s.client.readRange(ctx, target)
	if err != nil {
		return err
	}
	raw := ""
	if len(values) > 0 && len(values[0]) > 0 {
		raw = fmt.Sprint(values[0][0])
	}

	rec := attendance.ParseDayCell(raw)
	switch rec.Status {
	case attendance.StatusCheckedIn:
		return s.client.writeCell(ctx, target, attendance.CheckOutCell(rec.CheckIn, clockTime))
	case attendance.StatusComplete:
		return attendance.ErrDayComplete
	case attendance.StatusUnknown:
		return fmt.Errorf("%w: %q", attendance.ErrCellUnparseable, raw)
	default:
		return attendance.ErrNotCheckedIn
	}
}
