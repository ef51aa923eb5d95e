package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user account not found")
	ErrUsernameTaken          = errors.New("username is already taken")
	ErrEmployeeHasAccount     = errors.New("employee already has a user account")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
