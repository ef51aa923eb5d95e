package postgresql

import (
	"context"
	"fmt"

	"github.com/shiftline/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline/workforce-backend-go/internal/pkg/database"
)

type availabilityRepositoryImpl struct {
	db *database.DB
}

func NewAvailabilityRepository(db *database.DB) schedule.AvailabilityRepository {
	return &availabilityRepositoryImpl{db: db}
}

// ListByEmployee implements schedule.AvailabilityRepository.
func (r *availabilityRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]schedule.Availability, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT availability_id, employee_id, day_of_week, is_available
		FROM employee_availability
		WHERE employee_id = $1
		ORDER BY availability_id
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	defer rows.Close()

	var entries []schedule.Availability
	for rows.Next() {
		var a schedule.Availability
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.DayOfWeek, &a.IsAvailable); err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		entries = append(entries, a)
	}

	return entries, rows.Err()
}

// Upsert implements schedule.AvailabilityRepository.
func (r *availabilityRepositoryImpl) Upsert(ctx context.Context, av schedule.Availability) (schedule.Availability, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_availability (employee_id, day_of_week, is_available)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, day_of_week)
		DO UPDATE SET is_available = EXCLUDED.is_available
		RETURNING availability_id
	`

	err := q.QueryRow(ctx, query, av.EmployeeID, av.DayOfWeek, av.IsAvailable).Scan(&av.ID)
	if err != nil {
		return schedule.Availability{}, fmt.Errorf("failed to upsert availability: %w", err)
	}

	return av, nil
}
