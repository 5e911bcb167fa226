package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayCode classifies hours or leave usage. The multiplier applies to the
// employee's hourly rate when the code values a leave component.
type PayCode struct {
	ID           string
	CompanyID    string
	Code         string
	Description  string
	Multiplier   decimal.Decimal
	IsTaxable    bool
	IsAbsenceCode bool
	IsActive     bool
	CreatedByID  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PayRule is a prioritized, typed policy that reclassifies worked hours.
// Rules referenced by a saved calculation are treated as immutable for
// audit purposes; edits should create a new rule.
type PayRule struct {
	ID          string
	CompanyID   string
	Name        string
	Description *string
	Priority    int
	IsActive    bool
	Config      RuleConfig
	CreatedByID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PayComponentType classifies a pay component in results.
type PayComponentType string

const (
	ComponentTypeRegular      PayComponentType = "regular"
	ComponentTypeHours        PayComponentType = "hours"
	ComponentTypeLeave        PayComponentType = "leave"
	ComponentTypeAllowance    PayComponentType = "allowance"
	ComponentTypeDifferential PayComponentType = "differential"
)

// PayComponent is one line of an employee's itemized breakdown.
type PayComponent struct {
	Hours        float64          `json:"hours,omitempty"`
	Amount       decimal.Decimal  `json:"amount"`
	Multiplier   decimal.Decimal  `json:"multiplier"`
	Differential decimal.Decimal  `json:"differential"`
	Type         PayComponentType `json:"type"`
	RulesApplied []string         `json:"rules_applied"`
}

// PaySummary aggregates component hours and amounts.
type PaySummary struct {
	RegularHours       float64         `json:"regular_hours"`
	OvertimeHours      float64         `json:"overtime_hours"`
	DoubleTimeHours    float64         `json:"double_time_hours"`
	TotalAllowances    decimal.Decimal `json:"total_allowances"`
	ShiftDifferentials decimal.Decimal `json:"shift_differentials"`
}

// Add merges another summary into s.
func (s *PaySummary) Add(other PaySummary) {
	s.RegularHours += other.RegularHours
	s.OvertimeHours += other.OvertimeHours
	s.DoubleTimeHours += other.DoubleTimeHours
	s.TotalAllowances = s.TotalAllowances.Add(other.TotalAllowances)
	s.ShiftDifferentials = s.ShiftDifferentials.Add(other.ShiftDifferentials)
}

// EmployeeResult is the calculation output for one employee.
type EmployeeResult struct {
	EmployeeID    string                  `json:"employee_id"`
	EmployeeName  string                  `json:"employee_name"`
	TotalHours    float64                 `json:"total_hours"`
	PayComponents map[string]PayComponent `json:"pay_components"`
	Summary       PaySummary              `json:"summary"`
	// Error is set for employees that could not be processed (for
	// example an unknown id in an explicit subset); the batch continues.
	Error string `json:"error,omitempty"`
}

// PayCalculation is the persisted, immutable record of one employee's
// result for one period. Re-running a period appends a new record.
type PayCalculation struct {
	ID                 string
	EmployeeID         string
	CompanyID          string
	PayPeriodStart     time.Time
	PayPeriodEnd       time.Time
	TotalHours         float64
	RegularHours       float64
	OvertimeHours      float64
	DoubleTimeHours    float64
	TotalAllowances    decimal.Decimal
	ShiftDifferentials decimal.Decimal
	PayComponents      map[string]PayComponent
	CalculatedByID     string
	CalculatedAt       time.Time

	// DTO / Join
	EmployeeName *string
	EmployeeCode *string
}
