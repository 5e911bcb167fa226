package payroll

import (
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PAY CODE DTOs ==========

type CreatePayCodeRequest struct {
	Code          string          `json:"code"`
	Description   string          `json:"description"`
	Multiplier    decimal.Decimal `json:"multiplier"`
	IsTaxable     *bool           `json:"is_taxable,omitempty"`
	IsAbsenceCode bool            `json:"is_absence_code"`
}

func (r *CreatePayCodeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPayCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code must be 2-32 upper-case letters, digits, or underscores"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}
	if r.Multiplier.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "multiplier", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayCodeRequest struct {
	ID          string
	Description *string          `json:"description,omitempty"`
	Multiplier  *decimal.Decimal `json:"multiplier,omitempty"`
	IsTaxable   *bool            `json:"is_taxable,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

func (r *UpdatePayCodeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Multiplier != nil && r.Multiplier.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "multiplier", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayCodeResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Description   string          `json:"description"`
	Multiplier    decimal.Decimal `json:"multiplier"`
	IsTaxable     bool            `json:"is_taxable"`
	IsAbsenceCode bool            `json:"is_absence_code"`
	IsActive      bool            `json:"is_active"`
}

// ========== PAY RULE DTOs ==========

type CreatePayRuleRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Priority    int        `json:"priority"`
	Config      RuleConfig `json:"config"`
}

func (r *CreatePayRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 128 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 128 characters"})
	}
	if r.Priority < 0 {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be non-negative"})
	}
	if err := r.Config.Validate(); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, verrs...)
		} else {
			errs = append(errs, validator.ValidationError{Field: "config", Message: err.Error()})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayRuleRequest struct {
	ID          string
	Description *string     `json:"description,omitempty"`
	Priority    *int        `json:"priority,omitempty"`
	IsActive    *bool       `json:"is_active,omitempty"`
	Config      *RuleConfig `json:"config,omitempty"`
}

func (r *UpdatePayRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Priority != nil && *r.Priority < 0 {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be non-negative"})
	}
	if r.Config != nil {
		if err := r.Config.Validate(); err != nil {
			if verrs, ok := err.(validator.ValidationErrors); ok {
				errs = append(errs, verrs...)
			} else {
				errs = append(errs, validator.ValidationError{Field: "config", Message: err.Error()})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReorderPayRulesRequest struct {
	Orders []RuleOrder `json:"orders"`
}

type RuleOrder struct {
	ID       string `json:"id"`
	Priority int    `json:"priority"`
}

func (r *ReorderPayRulesRequest) Validate() error {
	var errs validator.ValidationErrors
	if len(r.Orders) == 0 {
		errs = append(errs, validator.ValidationError{Field: "orders", Message: "at least one rule order is required"})
	}
	for _, o := range r.Orders {
		if o.Priority < 0 {
			errs = append(errs, validator.ValidationError{Field: "orders", Message: "priorities must be non-negative"})
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayRuleResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Priority    int        `json:"priority"`
	IsActive    bool       `json:"is_active"`
	Config      RuleConfig `json:"config"`
}

// ========== CALCULATION DTOs ==========

type CalculateRequest struct {
	PayPeriodStart string   `json:"pay_period_start"`
	PayPeriodEnd   string   `json:"pay_period_end"`
	EmployeeIDs    []string `json:"employee_ids,omitempty"`
	SaveResults    bool     `json:"save_results,omitempty"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.PayPeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.PayPeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must not be before pay_period_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CalculateResponse is the batch output. SaveError reports a persistence
// failure after a successful calculation (partial success), distinct from
// a calculation failure.
type CalculateResponse struct {
	EmployeeResults    map[string]EmployeeResult `json:"employee_results"`
	Summary            PaySummary                `json:"summary"`
	TotalHours         float64                   `json:"total_hours"`
	EmployeeCount      int                       `json:"employee_count"`
	SavedCalculations  []PayCalculationResponse  `json:"saved_calculations"`
	SaveError          string                    `json:"save_error,omitempty"`
}

type PayCalculationResponse struct {
	ID                 string                  `json:"id"`
	EmployeeID         string                  `json:"employee_id"`
	EmployeeName       *string                 `json:"employee_name,omitempty"`
	EmployeeCode       *string                 `json:"employee_code,omitempty"`
	PayPeriodStart     string                  `json:"pay_period_start"`
	PayPeriodEnd       string                  `json:"pay_period_end"`
	TotalHours         float64                 `json:"total_hours"`
	RegularHours       float64                 `json:"regular_hours"`
	OvertimeHours      float64                 `json:"overtime_hours"`
	DoubleTimeHours    float64                 `json:"double_time_hours"`
	TotalAllowances    decimal.Decimal         `json:"total_allowances"`
	ShiftDifferentials decimal.Decimal         `json:"shift_differentials"`
	PayComponents      map[string]PayComponent `json:"pay_components,omitempty"`
	CalculatedAt       string                  `json:"calculated_at"`
}

type CalculationFilter struct {
	EmployeeID *string
	Page       int
	Limit      int
}

type ListCalculationResponse struct {
	Data       []PayCalculationResponse `json:"data"`
	TotalCount int64                    `json:"total_count"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
}
