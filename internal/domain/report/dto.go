package report

import (
	"time"

	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PeriodRequest struct {
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DepartmentID *string `json:"department_id,omitempty"`

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd {
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
		}
		r.Start, r.End = start, end
	}
	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceRow is one employee's attendance aggregate over the period.
type AttendanceRow struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	EmployeeCode   string  `json:"employee_code"`
	DepartmentName *string `json:"department_name,omitempty"`
	DaysWorked     int     `json:"days_worked"`
	WorkedHours    float64 `json:"worked_hours"`
	LeaveHours     float64 `json:"leave_hours"`
	ExceptionCount int     `json:"exception_count"`
}

type AttendanceSummaryResponse struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Rows      []AttendanceRow `json:"rows"`
}

// PayrollRow is one employee's saved-calculation aggregate over the period.
type PayrollRow struct {
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       string          `json:"employee_name"`
	EmployeeCode       string          `json:"employee_code"`
	TotalHours         float64         `json:"total_hours"`
	RegularHours       float64         `json:"regular_hours"`
	OvertimeHours      float64         `json:"overtime_hours"`
	DoubleTimeHours    float64         `json:"double_time_hours"`
	TotalAllowances    decimal.Decimal `json:"total_allowances"`
	ShiftDifferentials decimal.Decimal `json:"shift_differentials"`
}

type PayrollSummaryResponse struct {
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Rows      []PayrollRow `json:"rows"`
}
