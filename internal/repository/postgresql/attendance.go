package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/workforce-backend-go/internal/domain/attendance"
	"github.com/shiftline/workforce-backend-go/internal/pkg/database"
	"github.com/shiftline/workforce-backend-go/internal/pkg/timeutil"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, log attendance.AttendanceLog) (attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_logs (employee_id, date, clock_in)
		VALUES ($1, $2, $3::time)
		RETURNING log_id
	`

	var clockIn *string
	if log.ClockIn != nil {
		s := log.ClockIn.String()
		clockIn = &s
	}

	err := q.QueryRow(ctx, query, log.EmployeeID, log.Date, clockIn).Scan(&log.ID)
	if err != nil {
		// The unique index on (employee_id, date) closes the read-then-insert
		// race between two sessions clocking in at once.
		if isUniqueViolation(err, "attendance_logs_employee_id_date_key") {
			return attendance.AttendanceLog{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.AttendanceLog{}, fmt.Errorf("failed to create attendance log: %w", err)
	}

	return log, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id int64) (attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT log_id, employee_id, date, clock_in::text, clock_out::text
		FROM attendance_logs
		WHERE log_id = $1
	`

	var log attendance.AttendanceLog
	var clockIn, clockOut *string
	err := q.QueryRow(ctx, query, id).Scan(&log.ID, &log.EmployeeID, &log.Date, &clockIn, &clockOut)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceLog{}, attendance.ErrLogNotFound
		}
		return attendance.AttendanceLog{}, fmt.Errorf("failed to get attendance log: %w", err)
	}
	log.ClockIn = timeOfDayPtr(clockIn)
	log.ClockOut = timeOfDayPtr(clockOut)

	return log, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT log_id, employee_id, date, clock_in::text, clock_out::text
		FROM attendance_logs
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`

	var log attendance.AttendanceLog
	var clockIn, clockOut *string
	err := q.QueryRow(ctx, query, employeeID, date).Scan(&log.ID, &log.EmployeeID, &log.Date, &clockIn, &clockOut)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance log by employee and date: %w", err)
	}
	log.ClockIn = timeOfDayPtr(clockIn)
	log.ClockOut = timeOfDayPtr(clockOut)

	return &log, nil
}

// SetClockOut implements attendance.AttendanceRepository. The clock_out IS
// NULL guard makes a double clock-out lose atomically instead of silently
// overwriting the first one. Any break still open on the log is ended at the
// same instant, in the same transaction, so no break outlives its shift.
func (r *attendanceRepositoryImpl) SetClockOut(ctx context.Context, id int64, t timeutil.TimeOfDay) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			UPDATE attendance_logs
			SET clock_out = $1::time
			WHERE log_id = $2 AND clock_out IS NULL
		`

		commandTag, err := q.Exec(txCtx, query, t.String(), id)
		if err != nil {
			return fmt.Errorf("failed to set clock out: %w", err)
		}

		if commandTag.RowsAffected() == 0 {
			// Distinguish a missing log from one already closed.
			var exists bool
			if err := q.QueryRow(txCtx, `SELECT EXISTS (SELECT 1 FROM attendance_logs WHERE log_id = $1)`, id).Scan(&exists); err != nil {
				return fmt.Errorf("failed to check attendance log: %w", err)
			}
			if !exists {
				return attendance.ErrLogNotFound
			}
			return attendance.ErrAlreadyClockedOut
		}

		closeBreak := `
			UPDATE break_logs
			SET end_time = $1::time
			WHERE log_id = $2 AND end_time IS NULL
		`
		if _, err := q.Exec(txCtx, closeBreak, t.String(), id); err != nil {
			return fmt.Errorf("failed to close open break: %w", err)
		}

		return nil
	})
}

type breakRepositoryImpl struct {
	db *database.DB
}

func NewBreakRepository(db *database.DB) attendance.BreakRepository {
	return &breakRepositoryImpl{db: db}
}

// Create implements attendance.BreakRepository.
func (r *breakRepositoryImpl) Create(ctx context.Context, b attendance.BreakLog) (attendance.BreakLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO break_logs (log_id, start_time)
		VALUES ($1, $2::time)
		RETURNING break_id
	`

	err := q.QueryRow(ctx, query, b.LogID, b.StartTime.String()).Scan(&b.ID)
	if err != nil {
		// Partial unique index: one open break per log.
		if isUniqueViolation(err, "break_logs_active_key") {
			return attendance.BreakLog{}, attendance.ErrBreakAlreadyActive
		}
		return attendance.BreakLog{}, fmt.Errorf("failed to create break log: %w", err)
	}

	return b, nil
}

// GetActive implements attendance.BreakRepository.
func (r *breakRepositoryImpl) GetActive(ctx context.Context, logID int64) (*attendance.BreakLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT break_id, log_id, start_time::text, end_time::text
		FROM break_logs
		WHERE log_id = $1 AND end_time IS NULL
		LIMIT 1
	`

	var b attendance.BreakLog
	var start string
	var end *string
	err := q.QueryRow(ctx, query, logID).Scan(&b.ID, &b.LogID, &start, &end)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active break: %w", err)
	}
	b.StartTime = timeutil.TimeOfDay(start)
	b.EndTime = timeOfDayPtr(end)

	return &b, nil
}

// SetEnd implements attendance.BreakRepository.
func (r *breakRepositoryImpl) SetEnd(ctx context.Context, id int64, t timeutil.TimeOfDay) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE break_logs
		SET end_time = $1::time
		WHERE break_id = $2 AND end_time IS NULL
	`

	commandTag, err := q.Exec(ctx, query, t.String(), id)
	if err != nil {
		return fmt.Errorf("failed to end break: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrNoActiveBreak
	}

	return nil
}
