package leave

import (
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/validator"
)

type ApplyRequest struct {
	PayCodeID   string  `json:"pay_code_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	HoursPerDay float64 `json:"hours_per_day,omitempty"`
	Reason      *string `json:"reason,omitempty"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.PayCodeID) {
		errs = append(errs, validator.ValidationError{Field: "pay_code_id", Message: "must be a valid UUID"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if r.HoursPerDay < 0 || r.HoursPerDay > 24 {
		errs = append(errs, validator.ValidationError{Field: "hours_per_day", Message: "must be between 0 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveRequest struct {
	ID string
}

// BalanceRow is hours taken against one absence pay code in a year.
type BalanceRow struct {
	PayCodeID     string  `json:"pay_code_id"`
	PayCode       string  `json:"pay_code"`
	Description   string  `json:"description"`
	ApprovedHours float64 `json:"approved_hours"`
	PendingHours  float64 `json:"pending_hours"`
}

type BalanceResponse struct {
	EmployeeID string       `json:"employee_id"`
	Year       int          `json:"year"`
	Rows       []BalanceRow `json:"rows"`
}

type RejectRequest struct {
	ID     string
	Reason string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApplicationResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	PayCodeID       string  `json:"pay_code_id"`
	PayCode         *string `json:"pay_code,omitempty"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	HoursPerDay     float64 `json:"hours_per_day"`
	TotalHours      float64 `json:"total_hours"`
	Reason          *string `json:"reason,omitempty"`
	Status          Status  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type ApplicationFilter struct {
	EmployeeID *string
	Status     *Status
	Page       int
	Limit      int
}

type ListApplicationResponse struct {
	Data       []ApplicationResponse `json:"data"`
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
}
