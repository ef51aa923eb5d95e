package user

// UserAccount is a login credential tied 1:1 to an employee. At most one
// account exists per employee and usernames are globally unique; both are
// backed by unique indexes rather than the application-level checks of the
// system this replaces.
type UserAccount struct {
	ID           int64
	EmployeeID   int64
	Username     string
	PasswordHash string
	IsAdmin      bool

	// Joined from employees for listings.
	FirstName string
	LastName  string
}
