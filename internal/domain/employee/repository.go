package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id int64) (Employee, error)

	// List returns all employees with joined reference names.
	List(ctx context.Context) ([]Employee, error)

	// ListWithoutAccount anti-joins employees against user accounts, ordered
	// by last name then first name. Feeds account-creation choices.
	ListWithoutAccount(ctx context.Context) ([]Employee, error)
}
