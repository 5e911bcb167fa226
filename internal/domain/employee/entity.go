package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	UserID       *string
	CompanyID    string
	DepartmentID string
	EmployeeCode string
	FullName     string
	PhoneNumber  *string
	HireDate     time.Time
	// HourlyRate is the rate pay rule multipliers apply to. Calculations
	// use the rate in effect at calculation time; saved results are not
	// recalculated when it changes.
	HourlyRate decimal.Decimal
	Status     EmploymentStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time

	// DTO / Join
	DepartmentName *string
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// IsActive reports whether the employee is part of the active workforce.
func (e *Employee) IsActive() bool {
	return e.Status == EmploymentStatusActive && e.DeletedAt == nil
}
