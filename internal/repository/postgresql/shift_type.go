package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline/workforce-backend-go/internal/pkg/database"
	"github.com/shiftline/workforce-backend-go/internal/pkg/timeutil"
)

type shiftTypeRepositoryImpl struct {
	db *database.DB
}

func NewShiftTypeRepository(db *database.DB) schedule.ShiftTypeRepository {
	return &shiftTypeRepositoryImpl{db: db}
}

// List implements schedule.ShiftTypeRepository.
func (r *shiftTypeRepositoryImpl) List(ctx context.Context) ([]schedule.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT shift_type_id, shift_name, start_time::text, end_time::text
		FROM shift_types
		ORDER BY start_time
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift types: %w", err)
	}
	defer rows.Close()

	var shiftTypes []schedule.ShiftType
	for rows.Next() {
		var st schedule.ShiftType
		var start, end string
		if err := rows.Scan(&st.ID, &st.Name, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan shift type: %w", err)
		}
		st.StartTime = timeutil.TimeOfDay(start)
		st.EndTime = timeutil.TimeOfDay(end)
		shiftTypes = append(shiftTypes, st)
	}

	return shiftTypes, rows.Err()
}

// GetByID implements schedule.ShiftTypeRepository.
func (r *shiftTypeRepositoryImpl) GetByID(ctx context.Context, id int64) (schedule.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT shift_type_id, shift_name, start_time::text, end_time::text
		FROM shift_types
		WHERE shift_type_id = $1
	`

	var st schedule.ShiftType
	var start, end string
	err := q.QueryRow(ctx, query, id).Scan(&st.ID, &st.Name, &start, &end)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ShiftType{}, schedule.ErrShiftTypeNotFound
		}
		return schedule.ShiftType{}, fmt.Errorf("failed to get shift type: %w", err)
	}
	st.StartTime = timeutil.TimeOfDay(start)
	st.EndTime = timeutil.TimeOfDay(end)

	return st, nil
}

// Create implements schedule.ShiftTypeRepository.
func (r *shiftTypeRepositoryImpl) Create(ctx context.Context, st schedule.ShiftType) (schedule.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_types (shift_name, start_time, end_time)
		VALUES ($1, $2::time, $3::time)
		RETURNING shift_type_id
	`

	err := q.QueryRow(ctx, query, st.Name, st.StartTime.String(), st.EndTime.String()).Scan(&st.ID)
	if err != nil {
		return schedule.ShiftType{}, fmt.Errorf("failed to create shift type: %w", err)
	}

	return st, nil
}
