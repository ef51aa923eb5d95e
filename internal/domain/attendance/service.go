package attendance

import "context"

type AttendanceService interface {
	// ClockIn opens the employee's daily log at the current wall-clock time.
	// A second clock-in on the same day fails with ErrAlreadyClockedIn.
	ClockIn(ctx context.Context, employeeID int64) (LogResponse, error)

	// ClockOut closes today's log. Requires an open log: ErrNotClockedIn when
	// none exists, ErrAlreadyClockedOut when it is already closed.
	ClockOut(ctx context.Context, employeeID int64) (LogResponse, error)

	// StartBreak opens a break within today's open log. Fails with
	// ErrNoActiveShift when the employee is not currently clocked in, and with
	// ErrBreakAlreadyActive when an unfinished break exists.
	StartBreak(ctx context.Context, employeeID int64) (BreakResponse, error)

	// EndBreak closes the active break, or fails with ErrNoActiveBreak.
	EndBreak(ctx context.Context, employeeID int64) (BreakResponse, error)

	// Today assembles the time-clock dashboard: the scheduled shift, the day's
	// log and any active break, each omitted when absent.
	Today(ctx context.Context, employeeID int64) (TodayResponse, error)
}
