package schedule

import "time"

// Shift is a planned block of work for one employee. Shifts are planning
// data only; actual pay always derives from time entries.
type Shift struct {
	ID           string
	EmployeeID   string
	CompanyID    string
	StartTime    time.Time
	EndTime      time.Time
	Position     *string
	Notes        *string
	PublishedAt  *time.Time
	CreatedByID  string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeName *string
}

// Hours returns the planned shift length.
func (s *Shift) Hours() float64 {
	return s.EndTime.Sub(s.StartTime).Hours()
}

// IsPublished reports whether the shift is visible to the employee.
func (s *Shift) IsPublished() bool {
	return s.PublishedAt != nil
}

// ConflictsWith reports whether two shifts for the same employee overlap
// in time. Back-to-back shifts (end == start) do not conflict.
func (s *Shift) ConflictsWith(other *Shift) bool {
	if s.EmployeeID != other.EmployeeID {
		return false
	}
	return s.StartTime.Before(other.EndTime) && other.StartTime.Before(s.EndTime)
}
