package report

import "github.com/shiftline/workforce-backend-go/internal/pkg/timeutil"

// Row is the raw per-employee join of scheduled shift, attendance log and
// approved leave for one date, before status derivation. Only employees with
// a shift assignment or approved leave on the date appear; the report is not
// a full roster.
type Row struct {
	EmployeeID     int64
	FirstName      string
	LastName       string
	ScheduledStart *timeutil.TimeOfDay
	ScheduledEnd   *timeutil.TimeOfDay
	ClockIn        *timeutil.TimeOfDay
	ClockOut       *timeutil.TimeOfDay
	OnLeave        bool
}

type Entry struct {
	EmployeeID     int64   `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	ScheduledStart *string `json:"scheduled_start"`
	ScheduledEnd   *string `json:"scheduled_end"`
	ClockIn        *string `json:"clock_in"`
	ClockOut       *string `json:"clock_out"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
}
