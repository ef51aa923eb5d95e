package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftline/workforce-backend-go/internal/domain/report"
	"github.com/shiftline/workforce-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// Rows implements report.ReportRepository. Employees with neither a shift
// assignment nor approved leave on the date are filtered out; status
// derivation happens in the report service, not in SQL.
func (r *reportRepositoryImpl) Rows(ctx context.Context, date time.Time) ([]report.Row, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.employee_id, e.first_name, e.last_name,
			   st.start_time::text, st.end_time::text,
			   al.clock_in::text, al.clock_out::text,
			   lr.request_id IS NOT NULL AS on_leave
		FROM employees e
		LEFT JOIN shift_assignments sa ON e.employee_id = sa.employee_id AND sa.assigned_date = $1
		LEFT JOIN shift_types st ON sa.shift_type_id = st.shift_type_id
		LEFT JOIN attendance_logs al ON e.employee_id = al.employee_id AND al.date = $1
		LEFT JOIN leave_requests lr ON e.employee_id = lr.employee_id
			AND $1 BETWEEN lr.start_date AND lr.end_date AND lr.is_approved
		WHERE sa.assignment_id IS NOT NULL OR lr.request_id IS NOT NULL
		ORDER BY e.last_name, e.first_name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance report: %w", err)
	}
	defer rows.Close()

	var result []report.Row
	for rows.Next() {
		var row report.Row
		var schedStart, schedEnd, clockIn, clockOut *string
		err := rows.Scan(
			&row.EmployeeID, &row.FirstName, &row.LastName,
			&schedStart, &schedEnd,
			&clockIn, &clockOut,
			&row.OnLeave,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		row.ScheduledStart = timeOfDayPtr(schedStart)
		row.ScheduledEnd = timeOfDayPtr(schedEnd)
		row.ClockIn = timeOfDayPtr(clockIn)
		row.ClockOut = timeOfDayPtr(clockOut)
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
