package payroll

import "context"

// PayrollRepository defines data access for payroll configuration and
// saved calculations. All methods include companyID to keep tenants
// isolated.
type PayrollRepository interface {
	// Pay codes
	CreatePayCode(ctx context.Context, code PayCode) (PayCode, error)
	GetPayCodeByID(ctx context.Context, id string, companyID string) (PayCode, error)
	GetPayCodeByCode(ctx context.Context, code string, companyID string) (PayCode, error)
	ListPayCodes(ctx context.Context, companyID string, activeOnly bool) ([]PayCode, error)
	UpdatePayCode(ctx context.Context, companyID string, req UpdatePayCodeRequest) error
	DeletePayCode(ctx context.Context, id string, companyID string) error
	CountPayCodeUsage(ctx context.Context, id string, companyID string) (int64, error)

	// Pay rules
	CreatePayRule(ctx context.Context, rule PayRule) (PayRule, error)
	GetPayRuleByID(ctx context.Context, id string, companyID string) (PayRule, error)
	// GetActivePayRules returns active rules ordered by ascending
	// priority. Rules whose stored config no longer decodes are returned
	// in the second slice by name, for the caller to log and skip.
	GetActivePayRules(ctx context.Context, companyID string) ([]PayRule, []string, error)
	ListPayRules(ctx context.Context, companyID string, activeOnly bool) ([]PayRule, error)
	UpdatePayRule(ctx context.Context, companyID string, req UpdatePayRuleRequest) error
	ReorderPayRules(ctx context.Context, companyID string, orders []RuleOrder) error
	DeletePayRule(ctx context.Context, id string, companyID string) error
	CountPayRuleUsage(ctx context.Context, name string, companyID string) (int64, error)

	// Saved calculations (append-only: one insert per employee per run)
	CreateCalculation(ctx context.Context, calc PayCalculation) (PayCalculation, error)
	GetCalculationByID(ctx context.Context, id string, companyID string) (PayCalculation, error)
	ListCalculations(ctx context.Context, companyID string, filter CalculationFilter) ([]PayCalculation, int64, error)
}
