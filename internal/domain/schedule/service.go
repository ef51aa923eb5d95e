package schedule

import "context"

type ScheduleService interface {
	// CreateSchedule computes end_date = start_date + 6 days and persists an
	// unpublished schedule.
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)

	ListSchedules(ctx context.Context) ([]ScheduleResponse, error)

	// PublishSchedule is idempotent; re-publishing succeeds without change.
	PublishSchedule(ctx context.Context, id int64) error

	// AssignShift places an employee on a shift type on a date. The week-range
	// and duplicate checks run only when their config toggles are on.
	AssignShift(ctx context.Context, req AssignShiftRequest) (ShiftAssignment, error)

	// UnassignShift deletes an assignment; unknown ids succeed silently.
	UnassignShift(ctx context.Context, assignmentID int64) error

	// ListAssignments returns a schedule's assignments ordered by date then
	// shift start time.
	ListAssignments(ctx context.Context, scheduleID int64) ([]AssignmentResponse, error)

	// EmployeeRoster returns an employee's shifts, newest first, with the
	// owning schedule's publish flag.
	EmployeeRoster(ctx context.Context, employeeID int64) ([]RosterResponse, error)

	ListShiftTypes(ctx context.Context) ([]ShiftTypeResponse, error)
	CreateShiftType(ctx context.Context, req CreateShiftTypeRequest) (ShiftTypeResponse, error)

	GetAvailability(ctx context.Context, employeeID int64) ([]AvailabilityResponse, error)
	SetAvailability(ctx context.Context, employeeID int64, req SetAvailabilityRequest) (AvailabilityResponse, error)
}
