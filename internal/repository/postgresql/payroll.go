package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/payroll"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// ========== PAY CODES ==========

const payCodeColumns = `id, company_id, code, description, multiplier, is_taxable, is_absence_code,
	is_active, created_by_id, created_at, updated_at`

func scanPayCode(row pgx.Row) (payroll.PayCode, error) {
	var pc payroll.PayCode
	err := row.Scan(
		&pc.ID, &pc.CompanyID, &pc.Code, &pc.Description, &pc.Multiplier, &pc.IsTaxable,
		&pc.IsAbsenceCode, &pc.IsActive, &pc.CreatedByID, &pc.CreatedAt, &pc.UpdatedAt,
	)
	return pc, err
}

// CreatePayCode implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreatePayCode(ctx context.Context, code payroll.PayCode) (payroll.PayCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_codes (company_id, code, description, multiplier, is_taxable, is_absence_code, is_active, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + payCodeColumns + `
	`

	created, err := scanPayCode(q.QueryRow(ctx, query,
		code.CompanyID, code.Code, code.Description, code.Multiplier,
		code.IsTaxable, code.IsAbsenceCode, code.IsActive, code.CreatedByID,
	))
	if err != nil {
		if strings.Contains(err.Error(), "pay_codes_company_id_code_key") {
			return payroll.PayCode{}, payroll.ErrPayCodeExists
		}
		return payroll.PayCode{}, err
	}
	return created, nil
}

// GetPayCodeByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetPayCodeByID(ctx context.Context, id string, companyID string) (payroll.PayCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payCodeColumns + ` FROM pay_codes WHERE id = $1 AND company_id = $2`

	pc, err := scanPayCode(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayCode{}, payroll.ErrPayCodeNotFound
		}
		return payroll.PayCode{}, err
	}
	return pc, nil
}

// GetPayCodeByCode implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetPayCodeByCode(ctx context.Context, code string, companyID string) (payroll.PayCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payCodeColumns + ` FROM pay_codes WHERE code = $1 AND company_id = $2`

	pc, err := scanPayCode(q.QueryRow(ctx, query, code, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayCode{}, payroll.ErrPayCodeNotFound
		}
		return payroll.PayCode{}, err
	}
	return pc, nil
}

// ListPayCodes implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListPayCodes(ctx context.Context, companyID string, activeOnly bool) ([]payroll.PayCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payCodeColumns + `
		FROM pay_codes
		WHERE company_id = $1 AND ($2 = FALSE OR is_active = TRUE)
		ORDER BY code
	`

	rows, err := q.Query(ctx, query, companyID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []payroll.PayCode
	for rows.Next() {
		pc, err := scanPayCode(rows)
		if err != nil {
			return nil, err
		}
		codes = append(codes, pc)
	}
	return codes, rows.Err()
}

// UpdatePayCode implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdatePayCode(ctx context.Context, companyID string, req payroll.UpdatePayCodeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pay_codes
		SET description = COALESCE($1, description),
			multiplier = COALESCE($2, multiplier),
			is_taxable = COALESCE($3, is_taxable),
			is_active = COALESCE($4, is_active),
			updated_at = NOW()
		WHERE id = $5 AND company_id = $6
	`

	tag, err := q.Exec(ctx, query, req.Description, req.Multiplier, req.IsTaxable, req.IsActive, req.ID, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayCodeNotFound
	}
	return nil
}

// DeletePayCode implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeletePayCode(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM pay_codes WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return payroll.ErrPayCodeInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayCodeNotFound
	}
	return nil
}

// CountPayCodeUsage implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CountPayCodeUsage(ctx context.Context, id string, companyID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM time_entries WHERE pay_code_id = $1 AND company_id = $2`,
		id, companyID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ========== PAY RULES ==========

func scanPayRule(row pgx.Row) (payroll.PayRule, []byte, error) {
	var rule payroll.PayRule
	var rawConfig []byte
	err := row.Scan(
		&rule.ID, &rule.CompanyID, &rule.Name, &rule.Description, &rule.Priority,
		&rule.IsActive, &rawConfig, &rule.CreatedByID, &rule.CreatedAt, &rule.UpdatedAt,
	)
	return rule, rawConfig, err
}

const payRuleColumns = `id, company_id, name, description, priority, is_active, config,
	created_by_id, created_at, updated_at`

// CreatePayRule implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreatePayRule(ctx context.Context, rule payroll.PayRule) (payroll.PayRule, error) {
	q := GetQuerier(ctx, r.db)

	rawConfig, err := rule.Config.Encode()
	if err != nil {
		return payroll.PayRule{}, err
	}

	query := `
		INSERT INTO pay_rules (company_id, name, description, priority, is_active, config, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + payRuleColumns + `
	`

	created, raw, err := scanPayRule(q.QueryRow(ctx, query,
		rule.CompanyID, rule.Name, rule.Description, rule.Priority, rule.IsActive, rawConfig, rule.CreatedByID,
	))
	if err != nil {
		if strings.Contains(err.Error(), "pay_rules_company_id_name_key") {
			return payroll.PayRule{}, payroll.ErrPayRuleNameExists
		}
		return payroll.PayRule{}, err
	}
	if err := json.Unmarshal(raw, &created.Config); err != nil {
		return payroll.PayRule{}, err
	}
	return created, nil
}

// GetPayRuleByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetPayRuleByID(ctx context.Context, id string, companyID string) (payroll.PayRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payRuleColumns + ` FROM pay_rules WHERE id = $1 AND company_id = $2`

	rule, raw, err := scanPayRule(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayRule{}, payroll.ErrPayRuleNotFound
		}
		return payroll.PayRule{}, err
	}

	cfg, err := payroll.DecodeRuleConfig(raw)
	if err != nil {
		return payroll.PayRule{}, fmt.Errorf("decode config for rule %s: %w", rule.Name, err)
	}
	rule.Config = cfg
	return rule, nil
}

// GetActivePayRules implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetActivePayRules(ctx context.Context, companyID string) ([]payroll.PayRule, []string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payRuleColumns + `
		FROM pay_rules
		WHERE company_id = $1 AND is_active = TRUE
		ORDER BY priority, name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var rules []payroll.PayRule
	var skipped []string
	for rows.Next() {
		rule, raw, err := scanPayRule(rows)
		if err != nil {
			return nil, nil, err
		}
		cfg, err := payroll.DecodeRuleConfig(raw)
		if err != nil {
			skipped = append(skipped, rule.Name)
			continue
		}
		rule.Config = cfg
		rules = append(rules, rule)
	}
	return rules, skipped, rows.Err()
}

// ListPayRules implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListPayRules(ctx context.Context, companyID string, activeOnly bool) ([]payroll.PayRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payRuleColumns + `
		FROM pay_rules
		WHERE company_id = $1 AND ($2 = FALSE OR is_active = TRUE)
		ORDER BY priority, name
	`

	rows, err := q.Query(ctx, query, companyID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []payroll.PayRule
	for rows.Next() {
		rule, raw, err := scanPayRule(rows)
		if err != nil {
			return nil, err
		}
		// Listing keeps undecodable rules visible so admins can fix them.
		if err := json.Unmarshal(raw, &rule.Config); err != nil {
			rule.Config = payroll.RuleConfig{}
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

// UpdatePayRule implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdatePayRule(ctx context.Context, companyID string, req payroll.UpdatePayRuleRequest) error {
	q := GetQuerier(ctx, r.db)

	var rawConfig []byte
	if req.Config != nil {
		var err error
		rawConfig, err = req.Config.Encode()
		if err != nil {
			return err
		}
	}

	query := `
		UPDATE pay_rules
		SET description = COALESCE($1, description),
			priority = COALESCE($2, priority),
			is_active = COALESCE($3, is_active),
			config = COALESCE($4, config),
			updated_at = NOW()
		WHERE id = $5 AND company_id = $6
	`

	tag, err := q.Exec(ctx, query, req.Description, req.Priority, req.IsActive, rawConfig, req.ID, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayRuleNotFound
	}
	return nil
}

// ReorderPayRules implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ReorderPayRules(ctx context.Context, companyID string, orders []payroll.RuleOrder) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)
		for _, o := range orders {
			tag, err := q.Exec(txCtx,
				`UPDATE pay_rules SET priority = $1, updated_at = NOW() WHERE id = $2 AND company_id = $3`,
				o.Priority, o.ID, companyID,
			)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return payroll.ErrPayRuleNotFound
			}
		}
		return nil
	})
}

// DeletePayRule implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeletePayRule(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM pay_rules WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayRuleNotFound
	}
	return nil
}

// CountPayRuleUsage implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CountPayRuleUsage(ctx context.Context, name string, companyID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	// Saved component breakdowns record the names of the rules they
	// applied.
	query := `
		SELECT COUNT(*)
		FROM pay_calculations
		WHERE company_id = $1
			AND EXISTS (
				SELECT 1 FROM jsonb_each(pay_components) AS comp
				WHERE comp.value->'rules_applied' ? $2
			)
	`

	var count int64
	err := q.QueryRow(ctx, query, companyID, name).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ========== SAVED CALCULATIONS ==========

// CreateCalculation implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateCalculation(ctx context.Context, calc payroll.PayCalculation) (payroll.PayCalculation, error) {
	q := GetQuerier(ctx, r.db)

	components, err := json.Marshal(calc.PayComponents)
	if err != nil {
		return payroll.PayCalculation{}, err
	}

	query := `
		INSERT INTO pay_calculations (
			employee_id, company_id, pay_period_start, pay_period_end,
			total_hours, regular_hours, overtime_hours, double_time_hours,
			total_allowances, shift_differentials, pay_components, calculated_by_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, calculated_at
	`

	created := calc
	err = q.QueryRow(ctx, query,
		calc.EmployeeID, calc.CompanyID, calc.PayPeriodStart, calc.PayPeriodEnd,
		calc.TotalHours, calc.RegularHours, calc.OvertimeHours, calc.DoubleTimeHours,
		calc.TotalAllowances, calc.ShiftDifferentials, components, calc.CalculatedByID,
	).Scan(&created.ID, &created.CalculatedAt)
	if err != nil {
		return payroll.PayCalculation{}, err
	}
	return created, nil
}

// GetCalculationByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetCalculationByID(ctx context.Context, id string, companyID string) (payroll.PayCalculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.employee_id, c.company_id, c.pay_period_start, c.pay_period_end,
			c.total_hours, c.regular_hours, c.overtime_hours, c.double_time_hours,
			c.total_allowances, c.shift_differentials, c.pay_components, c.calculated_by_id, c.calculated_at,
			e.full_name, e.employee_code
		FROM pay_calculations c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.id = $1 AND c.company_id = $2
	`

	var calc payroll.PayCalculation
	var components []byte
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&calc.ID, &calc.EmployeeID, &calc.CompanyID, &calc.PayPeriodStart, &calc.PayPeriodEnd,
		&calc.TotalHours, &calc.RegularHours, &calc.OvertimeHours, &calc.DoubleTimeHours,
		&calc.TotalAllowances, &calc.ShiftDifferentials, &components, &calc.CalculatedByID, &calc.CalculatedAt,
		&calc.EmployeeName, &calc.EmployeeCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayCalculation{}, payroll.ErrCalculationNotFound
		}
		return payroll.PayCalculation{}, err
	}
	if err := json.Unmarshal(components, &calc.PayComponents); err != nil {
		return payroll.PayCalculation{}, err
	}
	return calc, nil
}

// ListCalculations implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListCalculations(ctx context.Context, companyID string, filter payroll.CalculationFilter) ([]payroll.PayCalculation, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"c.company_id = $1"}
	args := []interface{}{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("c.employee_id = $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM pay_calculations c WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT c.id, c.employee_id, c.company_id, c.pay_period_start, c.pay_period_end,
			c.total_hours, c.regular_hours, c.overtime_hours, c.double_time_hours,
			c.total_allowances, c.shift_differentials, c.pay_components, c.calculated_by_id, c.calculated_at,
			e.full_name, e.employee_code
		FROM pay_calculations c
		JOIN employees e ON e.id = c.employee_id
		WHERE `+where+`
		ORDER BY c.calculated_at DESC
		LIMIT $%d OFFSET $%d
	`, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var calcs []payroll.PayCalculation
	for rows.Next() {
		var calc payroll.PayCalculation
		var components []byte
		if err := rows.Scan(
			&calc.ID, &calc.EmployeeID, &calc.CompanyID, &calc.PayPeriodStart, &calc.PayPeriodEnd,
			&calc.TotalHours, &calc.RegularHours, &calc.OvertimeHours, &calc.DoubleTimeHours,
			&calc.TotalAllowances, &calc.ShiftDifferentials, &components, &calc.CalculatedByID, &calc.CalculatedAt,
			&calc.EmployeeName, &calc.EmployeeCode,
		); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(components, &calc.PayComponents); err != nil {
			return nil, 0, err
		}
		calcs = append(calcs, calc)
	}
	return calcs, total, rows.Err()
}
