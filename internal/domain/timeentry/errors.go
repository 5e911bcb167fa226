package timeentry

import "errors"

var (
	ErrTimeEntryNotFound    = errors.New("time entry not found")
	ErrAlreadyClockedIn     = errors.New("employee already has an open time entry")
	ErrNoOpenEntry          = errors.New("no open time entry to clock out")
	ErrClockOutBeforeIn     = errors.New("clock-out must be after clock-in")
	ErrAlreadyProcessed     = errors.New("time entry already approved or rejected")
	ErrEntryStillOpen       = errors.New("time entry is still open")
	ErrBreakExceedsSpan     = errors.New("break minutes exceed the worked span")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrPayCodeNotFound      = errors.New("pay code not found")
	ErrPayCodeNotAbsence    = errors.New("pay code is not an absence code")
)
