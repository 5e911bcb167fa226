package payroll

import "context"

// PayrollService defines business logic for payroll configuration and the
// pay calculation engine.
type PayrollService interface {
	// Pay codes
	CreatePayCode(ctx context.Context, req CreatePayCodeRequest) (PayCodeResponse, error)
	GetPayCode(ctx context.Context, id string) (PayCodeResponse, error)
	ListPayCodes(ctx context.Context, activeOnly bool) ([]PayCodeResponse, error)
	UpdatePayCode(ctx context.Context, req UpdatePayCodeRequest) error
	DeletePayCode(ctx context.Context, id string) error
	TogglePayCode(ctx context.Context, id string) (PayCodeResponse, error)

	// Pay rules
	CreatePayRule(ctx context.Context, req CreatePayRuleRequest) (PayRuleResponse, error)
	GetPayRule(ctx context.Context, id string) (PayRuleResponse, error)
	ListPayRules(ctx context.Context, activeOnly bool) ([]PayRuleResponse, error)
	UpdatePayRule(ctx context.Context, req UpdatePayRuleRequest) error
	ReorderPayRules(ctx context.Context, req ReorderPayRulesRequest) error
	DeletePayRule(ctx context.Context, id string) error

	// Calculate runs the pay calculation engine over a pay period.
	Calculate(ctx context.Context, req CalculateRequest) (CalculateResponse, error)

	// Saved calculations
	GetCalculation(ctx context.Context, id string) (PayCalculationResponse, error)
	ListCalculations(ctx context.Context, filter CalculationFilter) (ListCalculationResponse, error)
}
