package schedule

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	Create(ctx context.Context, sched WeeklySchedule) (WeeklySchedule, error)

	GetByID(ctx context.Context, id int64) (WeeklySchedule, error)

	// List returns schedules ordered by start date descending.
	List(ctx context.Context) ([]WeeklySchedule, error)

	// Publish flips is_published on. Re-publishing is a no-op success.
	Publish(ctx context.Context, id int64) error
}

type ShiftTypeRepository interface {
	List(ctx context.Context) ([]ShiftType, error)
	GetByID(ctx context.Context, id int64) (ShiftType, error)
	Create(ctx context.Context, st ShiftType) (ShiftType, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, a ShiftAssignment) (ShiftAssignment, error)

	// Delete removes the assignment; deleting a missing id is a no-op success.
	Delete(ctx context.Context, id int64) error

	// ListBySchedule returns joined rows ordered by date then shift start time.
	ListBySchedule(ctx context.Context, scheduleID int64) ([]AssignmentRow, error)

	// ListByEmployee returns the employee's roster ordered by date descending.
	ListByEmployee(ctx context.Context, employeeID int64) ([]RosterRow, error)

	// GetForDate returns the employee's assignment joined with its shift type
	// for one date, or ErrNoShiftScheduled.
	GetForDate(ctx context.Context, employeeID int64, date time.Time) (AssignmentRow, error)

	// ExistsForDate reports whether the employee already has any assignment
	// on the date. Backs the configurable duplicate check.
	ExistsForDate(ctx context.Context, employeeID int64, date time.Time) (bool, error)
}

type AvailabilityRepository interface {
	ListByEmployee(ctx context.Context, employeeID int64) ([]Availability, error)

	// Upsert sets the availability flag for one (employee, weekday) pair.
	Upsert(ctx context.Context, av Availability) (Availability, error)
}
