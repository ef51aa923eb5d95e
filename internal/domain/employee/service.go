package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)

	// ListWithoutAccount feeds the account-creation picker.
	ListWithoutAccount(ctx context.Context) ([]EmployeeResponse, error)
}
