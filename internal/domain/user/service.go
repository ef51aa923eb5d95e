package user

import "context"

type AccountService interface {
	// Create opens a login account for an employee. Usernames and the
	// one-account-per-employee rule are enforced by unique indexes, so two
	// concurrent creates cannot both succeed.
	Create(ctx context.Context, req CreateAccountRequest) (AccountResponse, error)

	// Delete removes the account without touching the employee.
	Delete(ctx context.Context, userID int64) error

	List(ctx context.Context) ([]AccountResponse, error)

	UsernameExists(ctx context.Context, username string) (bool, error)
}
