package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline/workforce-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, sched schedule.WeeklySchedule) (schedule.WeeklySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO weekly_schedules (start_date, end_date, is_published)
		VALUES ($1, $2, false)
		RETURNING schedule_id, is_published
	`

	err := q.QueryRow(ctx, query, sched.StartDate, sched.EndDate).Scan(&sched.ID, &sched.IsPublished)
	if err != nil {
		return schedule.WeeklySchedule{}, fmt.Errorf("failed to create weekly schedule: %w", err)
	}

	return sched, nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id int64) (schedule.WeeklySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT schedule_id, start_date, end_date, is_published
		FROM weekly_schedules
		WHERE schedule_id = $1
	`

	var sched schedule.WeeklySchedule
	err := q.QueryRow(ctx, query, id).Scan(&sched.ID, &sched.StartDate, &sched.EndDate, &sched.IsPublished)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WeeklySchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WeeklySchedule{}, fmt.Errorf("failed to get weekly schedule: %w", err)
	}

	return sched, nil
}

// List implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) List(ctx context.Context) ([]schedule.WeeklySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT schedule_id, start_date, end_date, is_published
		FROM weekly_schedules
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WeeklySchedule
	for rows.Next() {
		var s schedule.WeeklySchedule
		if err := rows.Scan(&s.ID, &s.StartDate, &s.EndDate, &s.IsPublished); err != nil {
			return nil, fmt.Errorf("failed to scan weekly schedule: %w", err)
		}
		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}

// Publish implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Publish(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE weekly_schedules SET is_published = true WHERE schedule_id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to publish schedule: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}
