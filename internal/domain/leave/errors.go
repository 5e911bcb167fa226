package leave

import "errors"

var (
	ErrApplicationNotFound   = errors.New("leave application not found")
	ErrApplicationNotPending = errors.New("leave application is not pending")
	ErrOverlappingLeave      = errors.New("an approved or pending application already covers part of this range")
	ErrPayCodeNotAbsence     = errors.New("pay code is not an absence code")
	ErrCannotApproveOwnLeave = errors.New("cannot approve your own leave application")
	ErrNotApplicationOwner   = errors.New("leave application belongs to another employee")
)
