package attendance

import "errors"

// Attendance domain errors. The clock and break conditions are recoverable
// user-facing conflicts, not failures.
var (
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrNotClockedIn      = errors.New("not clocked in")
	ErrAlreadyClockedOut = errors.New("already clocked out today")

	ErrNoActiveShift      = errors.New("no active shift to take a break from")
	ErrBreakAlreadyActive = errors.New("a break is already active")
	ErrNoActiveBreak      = errors.New("no active break")

	ErrLogNotFound = errors.New("attendance log not found")
)
