package timeentry

import (
	"time"
)

type Status string

const (
	// StatusActive is an open entry: clocked in, not yet clocked out.
	StatusActive Status = "active"
	// StatusPending is a closed entry awaiting manager approval.
	StatusPending Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	// StatusException marks entries left open past the configured limit;
	// they stay out of payroll until corrected and closed.
	StatusException Status = "exception"
)

type TimeEntry struct {
	ID                string
	EmployeeID        string
	CompanyID         string
	ClockInTime       time.Time
	ClockOutTime      *time.Time
	BreakMinutes      int
	ClockInLatitude   *float64
	ClockInLongitude  *float64
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	Status            Status
	// PayCodeID links leave/absence entries to their pay code. Worked
	// entries leave it nil.
	PayCodeID       *string
	Notes           *string
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeName *string
	PayCode      *string
}

// WorkedHours returns the span minus break minutes, in hours. Open entries
// contribute zero until they are closed.
func (t *TimeEntry) WorkedHours() float64 {
	if t.ClockOutTime == nil {
		return 0
	}
	minutes := t.ClockOutTime.Sub(t.ClockInTime).Minutes() - float64(t.BreakMinutes)
	if minutes < 0 {
		return 0
	}
	return minutes / 60
}

// WorkDate is the calendar day the entry is attributed to. Entries spanning
// midnight belong to the clock-in date.
func (t *TimeEntry) WorkDate() time.Time {
	y, m, d := t.ClockInTime.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.ClockInTime.Location())
}

// IsOpen reports whether the entry is still clocked in.
func (t *TimeEntry) IsOpen() bool {
	return t.ClockOutTime == nil
}

// IsLeave reports whether the entry represents leave or absence usage
// rather than worked time.
func (t *TimeEntry) IsLeave() bool {
	return t.PayCodeID != nil
}

// CountsForPayroll reports whether the entry may feed a pay calculation.
// Rejected and exception entries never do; open entries contribute zero
// hours but are excluded here to keep calculations append-safe.
func (t *TimeEntry) CountsForPayroll() bool {
	if t.Status == StatusRejected || t.Status == StatusException {
		return false
	}
	return !t.IsOpen()
}
