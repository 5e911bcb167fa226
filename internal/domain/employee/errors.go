package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrNegativeHourlyRate = errors.New("hourly rate must be non-negative")
)
