package schedule

import (
	"time"

	"github.com/shiftline/workforce-backend-go/internal/pkg/timeutil"
)

// WeeklySchedule is a fixed 7-day window grouping shift assignments.
// EndDate is always StartDate + 6 days; the creating operation computes it.
type WeeklySchedule struct {
	ID          int64
	StartDate   time.Time
	EndDate     time.Time
	IsPublished bool
}

// ShiftType is a reusable named start/end template, e.g. "Morning" 09:00-17:00.
// EndTime may be numerically earlier than StartTime for overnight shifts; the
// values are literal times of day, not durations.
type ShiftType struct {
	ID        int64
	Name      string
	StartTime timeutil.TimeOfDay
	EndTime   timeutil.TimeOfDay
}

// ShiftAssignment places one employee on one shift type on one concrete date
// within a schedule's week.
type ShiftAssignment struct {
	ID           int64
	ScheduleID   int64
	EmployeeID   int64
	ShiftTypeID  int64
	AssignedDate time.Time
}

// AssignmentRow is an assignment joined with employee and shift names for
// schedule listings.
type AssignmentRow struct {
	AssignmentID int64
	AssignedDate time.Time
	FirstName    string
	LastName     string
	ShiftName    string
	StartTime    timeutil.TimeOfDay
	EndTime      timeutil.TimeOfDay
}

// RosterRow is one shift from an employee's perspective, carrying the
// schedule's publish flag so unpublished shifts can be marked tentative.
type RosterRow struct {
	AssignedDate time.Time
	ShiftName    string
	StartTime    timeutil.TimeOfDay
	EndTime      timeutil.TimeOfDay
	IsPublished  bool
}

// Availability records whether an employee can work a given weekday. Stored
// per the schema but consulted by no scheduling rule, matching the system
// this replaces.
type Availability struct {
	ID          int64
	EmployeeID  int64
	DayOfWeek   string
	IsAvailable bool
}
