package leave

import "context"

type LeaveService interface {
	// Submit files an unapproved request for the caller's employee record.
	Submit(ctx context.Context, req SubmitRequestRequest) (RequestResponse, error)

	// Approve marks a request approved. Idempotent on re-approval.
	Approve(ctx context.Context, id int64) error

	// List returns all requests (admin view) when employeeID is nil, or one
	// employee's requests otherwise.
	List(ctx context.Context, employeeID *int64) ([]RequestResponse, error)

	ListTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	CreateType(ctx context.Context, name string) (LeaveTypeResponse, error)
}
