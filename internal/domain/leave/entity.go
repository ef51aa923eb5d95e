package leave

import "time"

type LeaveType struct {
	ID   int64
	Name string
}

// LeaveRequest is an employee-submitted date range. It is created unapproved
// and transitions to approved exactly once; no rejection or revocation state
// exists. Approved requests override attendance status for the covered dates.
type LeaveRequest struct {
	ID          int64
	EmployeeID  int64
	LeaveTypeID int64
	StartDate   time.Time
	EndDate     time.Time
	IsApproved  bool

	// Joined for listings.
	FirstName string
	LastName  string
	TypeName  string
}
