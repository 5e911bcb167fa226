package schedule

import "errors"

var (
	ErrShiftNotFound    = errors.New("shift not found")
	ErrShiftConflict    = errors.New("shift overlaps an existing shift for this employee")
	ErrShiftPublished   = errors.New("published shifts cannot be deleted, unpublish first")
	ErrEndBeforeStart   = errors.New("shift end must be after start")
	ErrEmployeeNotFound = errors.New("employee not found")
)
