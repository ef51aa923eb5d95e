package attendance

import (
	"context"
	"time"

	"github.com/shiftline/workforce-backend-go/internal/pkg/timeutil"
)

type AttendanceRepository interface {
	// Create inserts the day's log. A unique-index violation on
	// (employee_id, date) surfaces as ErrAlreadyClockedIn, which makes the
	// read-then-insert pattern race-free.
	Create(ctx context.Context, log AttendanceLog) (AttendanceLog, error)

	GetByID(ctx context.Context, id int64) (AttendanceLog, error)

	// GetByEmployeeAndDate returns nil when no log exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*AttendanceLog, error)

	// SetClockOut closes the log and ends any break still open on it.
	// Returns ErrAlreadyClockedOut when the log is already closed,
	// ErrLogNotFound when it does not exist.
	SetClockOut(ctx context.Context, id int64, t timeutil.TimeOfDay) error
}

type BreakRepository interface {
	// Create opens a break. A partial-unique violation (another break still
	// open) surfaces as ErrBreakAlreadyActive.
	Create(ctx context.Context, b BreakLog) (BreakLog, error)

	// GetActive returns the open break for a log, or nil.
	GetActive(ctx context.Context, logID int64) (*BreakLog, error)

	// SetEnd closes a break. Returns ErrNoActiveBreak when the break does not
	// exist or is already closed.
	SetEnd(ctx context.Context, id int64, t timeutil.TimeOfDay) error
}
