package user

import "context"

type UserRepository interface {
	// Create inserts a new account. Unique-index violations surface as
	// ErrUsernameTaken or ErrEmployeeHasAccount.
	Create(ctx context.Context, account UserAccount) (UserAccount, error)

	// GetByUsername returns the account with joined employee names.
	GetByUsername(ctx context.Context, username string) (UserAccount, error)

	GetByID(ctx context.Context, id int64) (UserAccount, error)

	// List returns all accounts ordered by employee last name, first name.
	List(ctx context.Context) ([]UserAccount, error)

	// Delete removes the account; the underlying employee is untouched.
	Delete(ctx context.Context, id int64) error

	UsernameExists(ctx context.Context, username string) (bool, error)
}
