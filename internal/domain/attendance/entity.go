package attendance

import (
	"time"

	"github.com/shiftline/workforce-backend-go/internal/pkg/timeutil"
)

// AttendanceLog is the single daily clock-in/clock-out record for one
// employee. At most one log exists per (employee, date), backed by a unique
// index.
type AttendanceLog struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	ClockIn    *timeutil.TimeOfDay
	ClockOut   *timeutil.TimeOfDay
}

// ClockedOut reports whether the day's record is closed.
func (l AttendanceLog) ClockedOut() bool {
	return l.ClockOut != nil
}

// BreakLog is an off-duty sub-interval within an attendance log. A break with
// no end time is active; at most one break per log is active at a time,
// backed by a partial unique index.
type BreakLog struct {
	ID        int64
	LogID     int64
	StartTime timeutil.TimeOfDay
	EndTime   *timeutil.TimeOfDay
}

type Status string

const (
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
	StatusOnTime  Status = "On Time"
	StatusOnLeave Status = "On Leave"
)

// DeriveStatus classifies a day's attendance against the scheduled shift
// start. Absent when no clock-in exists, Late when the clock-in is after the
// scheduled start, On Time otherwise. The comparison is plain time-of-day
// ordering and misclassifies shifts that cross midnight; see timeutil.TimeOfDay.
func DeriveStatus(clockIn *timeutil.TimeOfDay, scheduledStart timeutil.TimeOfDay) Status {
	if clockIn == nil {
		return StatusAbsent
	}
	if clockIn.After(scheduledStart) {
		return StatusLate
	}
	return StatusOnTime
}
