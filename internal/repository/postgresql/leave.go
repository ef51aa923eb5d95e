package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/workforce-backend-go/internal/domain/leave"
	"github.com/shiftline/workforce-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

// List implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) List(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT leave_type_id, type_name FROM leave_types ORDER BY type_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		var t leave.LeaveType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

// Create implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, name string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	t := leave.LeaveType{Name: name}
	err := q.QueryRow(ctx,
		`INSERT INTO leave_types (type_name) VALUES ($1) RETURNING leave_type_id`,
		name,
	).Scan(&t.ID)
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return t, nil
}

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, leave_type_id, start_date, end_date, is_approved)
		VALUES ($1, $2, $3, $4, false)
		RETURNING request_id, is_approved
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.LeaveTypeID,
		req.StartDate,
		req.EndDate,
	).Scan(&req.ID, &req.IsApproved)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// Approve implements leave.LeaveRequestRepository. Approving a request that
// is already approved sets the same value again and succeeds.
func (r *leaveRequestRepositoryImpl) Approve(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE leave_requests SET is_approved = true WHERE request_id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to approve leave request: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// List implements leave.LeaveRequestRepository. Both branches return the same
// row shape; only the filter and ordering differ.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, employeeID *int64) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	base := `
		SELECT lr.request_id, lr.employee_id, lr.leave_type_id,
			   lr.start_date, lr.end_date, lr.is_approved,
			   e.first_name, e.last_name, lt.type_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.employee_id
		JOIN leave_types lt ON lr.leave_type_id = lt.leave_type_id
	`

	var (
		rows pgx.Rows
		err  error
	)
	if employeeID != nil {
		rows, err = q.Query(ctx, base+`WHERE lr.employee_id = $1 ORDER BY lr.start_date DESC`, *employeeID)
	} else {
		rows, err = q.Query(ctx, base+`ORDER BY lr.is_approved, lr.start_date DESC`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveTypeID,
			&req.StartDate, &req.EndDate, &req.IsApproved,
			&req.FirstName, &req.LastName, &req.TypeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}
