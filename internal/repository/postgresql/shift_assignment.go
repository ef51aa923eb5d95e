package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline/workforce-backend-go/internal/pkg/database"
	"github.com/shiftline/workforce-backend-go/internal/pkg/timeutil"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) schedule.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

// Create implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a schedule.ShiftAssignment) (schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (schedule_id, employee_id, shift_type_id, assigned_date)
		VALUES ($1, $2, $3, $4)
		RETURNING assignment_id
	`

	err := q.QueryRow(ctx, query,
		a.ScheduleID,
		a.EmployeeID,
		a.ShiftTypeID,
		a.AssignedDate,
	).Scan(&a.ID)

	if err != nil {
		return schedule.ShiftAssignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return a, nil
}

// Delete implements schedule.AssignmentRepository. Deleting an id that does
// not exist succeeds silently.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE assignment_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}

	return nil
}

// ListBySchedule implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListBySchedule(ctx context.Context, scheduleID int64) ([]schedule.AssignmentRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.assignment_id, sa.assigned_date,
			   e.first_name, e.last_name,
			   st.shift_name, st.start_time::text, st.end_time::text
		FROM shift_assignments sa
		JOIN employees e ON sa.employee_id = e.employee_id
		JOIN shift_types st ON sa.shift_type_id = st.shift_type_id
		WHERE sa.schedule_id = $1
		ORDER BY sa.assigned_date, st.start_time
	`

	rows, err := q.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []schedule.AssignmentRow
	for rows.Next() {
		var row schedule.AssignmentRow
		var start, end string
		err := rows.Scan(
			&row.AssignmentID, &row.AssignedDate,
			&row.FirstName, &row.LastName,
			&row.ShiftName, &start, &end,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		row.StartTime = timeutil.TimeOfDay(start)
		row.EndTime = timeutil.TimeOfDay(end)
		assignments = append(assignments, row)
	}

	return assignments, rows.Err()
}

// ListByEmployee implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]schedule.RosterRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.assigned_date, st.shift_name, st.start_time::text, st.end_time::text, ws.is_published
		FROM shift_assignments sa
		JOIN shift_types st ON sa.shift_type_id = st.shift_type_id
		JOIN weekly_schedules ws ON sa.schedule_id = ws.schedule_id
		WHERE sa.employee_id = $1
		ORDER BY sa.assigned_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee shifts: %w", err)
	}
	defer rows.Close()

	var roster []schedule.RosterRow
	for rows.Next() {
		var row schedule.RosterRow
		var start, end string
		if err := rows.Scan(&row.AssignedDate, &row.ShiftName, &start, &end, &row.IsPublished); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		row.StartTime = timeutil.TimeOfDay(start)
		row.EndTime = timeutil.TimeOfDay(end)
		roster = append(roster, row)
	}

	return roster, rows.Err()
}

// GetForDate implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetForDate(ctx context.Context, employeeID int64, date time.Time) (schedule.AssignmentRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.assignment_id, sa.assigned_date,
			   st.shift_name, st.start_time::text, st.end_time::text
		FROM shift_assignments sa
		JOIN shift_types st ON sa.shift_type_id = st.shift_type_id
		WHERE sa.employee_id = $1 AND sa.assigned_date = $2
		LIMIT 1
	`

	var row schedule.AssignmentRow
	var start, end string
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&row.AssignmentID, &row.AssignedDate, &row.ShiftName, &start, &end,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.AssignmentRow{}, schedule.ErrNoShiftScheduled
		}
		return schedule.AssignmentRow{}, fmt.Errorf("failed to get shift for date: %w", err)
	}
	row.StartTime = timeutil.TimeOfDay(start)
	row.EndTime = timeutil.TimeOfDay(end)

	return row, nil
}

// ExistsForDate implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) ExistsForDate(ctx context.Context, employeeID int64, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM shift_assignments WHERE employee_id = $1 AND assigned_date = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check assignment for date: %w", err)
	}

	return exists, nil
}
