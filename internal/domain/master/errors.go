package master

import "errors"

var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrWorkLocationNotFound = errors.New("work location not found")
)
