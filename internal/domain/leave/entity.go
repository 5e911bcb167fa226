package leave

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Application is a request for paid or unpaid absence over a date range.
// Approval materializes one absence time entry per day in the range so the
// pay calculation engine values the days through the linked pay code.
type Application struct {
	ID              string
	EmployeeID      string
	CompanyID       string
	PayCodeID       string
	StartDate       time.Time
	EndDate         time.Time
	HoursPerDay     float64
	Reason          *string
	Status          Status
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeName *string
	PayCode      *string
}

// Days returns the number of calendar days the application covers,
// inclusive of both endpoints.
func (a *Application) Days() int {
	return int(a.EndDate.Sub(a.StartDate).Hours()/24) + 1
}

// TotalHours is the leave hours the application represents.
func (a *Application) TotalHours() float64 {
	return float64(a.Days()) * a.HoursPerDay
}

// Overlaps reports whether the application's range intersects [start, end].
func (a *Application) Overlaps(start, end time.Time) bool {
	return !a.StartDate.After(end) && !a.EndDate.Before(start)
}
