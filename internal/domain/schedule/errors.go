package schedule

import "errors"

var (
	ErrScheduleNotFound   = errors.New("weekly schedule not found")
	ErrShiftTypeNotFound  = errors.New("shift type not found")
	ErrAssignmentNotFound = errors.New("shift assignment not found")

	// Raised only when the corresponding validation toggle is on.
	ErrDateOutsideSchedule = errors.New("assigned date falls outside the schedule week")
	ErrDuplicateAssignment = errors.New("employee already has an assignment on this date")

	ErrNoShiftScheduled = errors.New("no shift scheduled for this date")
)
