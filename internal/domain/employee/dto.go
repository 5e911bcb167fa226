package employee

import (
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	DepartmentID string          `json:"department_id"`
	EmployeeCode string          `json:"employee_code"`
	FullName     string          `json:"full_name"`
	PhoneNumber  *string         `json:"phone_number,omitempty"`
	HireDate     string          `json:"hire_date"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	UserID       *string         `json:"user_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee_code must match NNNN-NNNN"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be YYYY-MM-DD"})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string
	DepartmentID *string          `json:"department_id,omitempty"`
	FullName     *string          `json:"full_name,omitempty"`
	PhoneNumber  *string          `json:"phone_number,omitempty"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate,omitempty"`
	Status       *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(EmploymentStatusActive), string(EmploymentStatusResigned), string(EmploymentStatusTerminated),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be active, resigned, or terminated"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	DepartmentID   string          `json:"department_id"`
	DepartmentName *string         `json:"department_name,omitempty"`
	EmployeeCode   string          `json:"employee_code"`
	FullName       string          `json:"full_name"`
	PhoneNumber    *string         `json:"phone_number,omitempty"`
	HireDate       string          `json:"hire_date"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	Status         string          `json:"status"`
}

type EmployeeFilter struct {
	DepartmentID *string
	Status       *string
	Search       *string
	Page         int
	Limit        int
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
