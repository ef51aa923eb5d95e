package leave

import "context"

type LeaveTypeRepository interface {
	List(ctx context.Context) ([]LeaveType, error)
	Create(ctx context.Context, name string) (LeaveType, error)
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// Approve flips is_approved on. Approving an approved request is a no-op
	// success; a missing id is ErrLeaveRequestNotFound.
	Approve(ctx context.Context, id int64) error

	// List returns joined rows. With employeeID set: that employee's requests
	// by start date descending. Without: all requests, unapproved first, then
	// start date descending. Both use the same row shape.
	List(ctx context.Context, employeeID *int64) ([]LeaveRequest, error)
}
