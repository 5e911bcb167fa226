package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/employee"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/payroll"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/timeentry"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/user"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/database"
	"github.com/qhamayedwa/wfm-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db            *database.DB
	payrollRepo   payroll.PayrollRepository
	employeeRepo  employee.EmployeeRepository
	timeEntryRepo timeentry.TimeEntryRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	timeEntryRepo timeentry.TimeEntryRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:            db,
		payrollRepo:   payrollRepo,
		employeeRepo:  employeeRepo,
		timeEntryRepo: timeEntryRepo,
	}
}

// Helper to get company_id, user_id and role from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)
	roleStr, _ := claims["role"].(string)

	return companyID, userID, user.Role(roleStr), nil
}

// ========== PAY CODES ==========

func (s *PayrollServiceImpl) CreatePayCode(ctx context.Context, req payroll.CreatePayCodeRequest) (payroll.PayCodeResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayCodeResponse{}, err
	}

	companyID, userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayCodeResponse{}, err
	}

	isTaxable := true
	if req.IsTaxable != nil {
		isTaxable = *req.IsTaxable
	}

	created, err := s.payrollRepo.CreatePayCode(ctx, payroll.PayCode{
		CompanyID:     companyID,
		Code:          req.Code,
		Description:   req.Description,
		Multiplier:    req.Multiplier,
		IsTaxable:     isTaxable,
		IsAbsenceCode: req.IsAbsenceCode,
		IsActive:      true,
		CreatedByID:   userID,
	})
	if err != nil {
		return payroll.PayCodeResponse{}, err
	}

	return toPayCodeResponse(created), nil
}

func (s *PayrollServiceImpl) GetPayCode(ctx context.Context, id string) (payroll.PayCodeResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayCodeResponse{}, err
	}

	code, err := s.payrollRepo.GetPayCodeByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayCodeResponse{}, err
	}
	return toPayCodeResponse(code), nil
}

func (s *PayrollServiceImpl) ListPayCodes(ctx context.Context, activeOnly bool) ([]payroll.PayCodeResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	codes, err := s.payrollRepo.ListPayCodes(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayCodeResponse, 0, len(codes))
	for _, code := range codes {
		responses = append(responses, toPayCodeResponse(code))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) UpdatePayCode(ctx context.Context, req payroll.UpdatePayCodeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.payrollRepo.UpdatePayCode(ctx, companyID, req)
}

func (s *PayrollServiceImpl) DeletePayCode(ctx context.Context, id string) error {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	// Codes referenced by time entries stay for the audit trail.
	usage, err := s.payrollRepo.CountPayCodeUsage(ctx, id, companyID)
	if err != nil {
		return err
	}
	if usage > 0 {
		return payroll.ErrPayCodeInUse
	}

	return s.payrollRepo.DeletePayCode(ctx, id, companyID)
}

func (s *PayrollServiceImpl) TogglePayCode(ctx context.Context, id string) (payroll.PayCodeResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayCodeResponse{}, err
	}

	code, err := s.payrollRepo.GetPayCodeByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayCodeResponse{}, err
	}

	active := !code.IsActive
	if err := s.payrollRepo.UpdatePayCode(ctx, companyID, payroll.UpdatePayCodeRequest{
		ID:       id,
		IsActive: &active,
	}); err != nil {
		return payroll.PayCodeResponse{}, err
	}

	code.IsActive = active
	return toPayCodeResponse(code), nil
}

// ========== PAY RULES ==========

func (s *PayrollServiceImpl) CreatePayRule(ctx context.Context, req payroll.CreatePayRuleRequest) (payroll.PayRuleResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayRuleResponse{}, err
	}

	companyID, userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayRuleResponse{}, err
	}

	created, err := s.payrollRepo.CreatePayRule(ctx, payroll.PayRule{
		CompanyID:   companyID,
		Name:        req.Name,
		Description: req.Description,
		Priority:    req.Priority,
		IsActive:    true,
		Config:      req.Config,
		CreatedByID: userID,
	})
	if err != nil {
		return payroll.PayRuleResponse{}, err
	}

	return toPayRuleResponse(created), nil
}

func (s *PayrollServiceImpl) GetPayRule(ctx context.Context, id string) (payroll.PayRuleResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayRuleResponse{}, err
	}

	rule, err := s.payrollRepo.GetPayRuleByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayRuleResponse{}, err
	}
	return toPayRuleResponse(rule), nil
}

func (s *PayrollServiceImpl) ListPayRules(ctx context.Context, activeOnly bool) ([]payroll.PayRuleResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rules, err := s.payrollRepo.ListPayRules(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayRuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, toPayRuleResponse(rule))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) UpdatePayRule(ctx context.Context, req payroll.UpdatePayRuleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.payrollRepo.UpdatePayRule(ctx, companyID, req)
}

func (s *PayrollServiceImpl) ReorderPayRules(ctx context.Context, req payroll.ReorderPayRulesRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.payrollRepo.ReorderPayRules(ctx, companyID, req.Orders)
}

func (s *PayrollServiceImpl) DeletePayRule(ctx context.Context, id string) error {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	rule, err := s.payrollRepo.GetPayRuleByID(ctx, id, companyID)
	if err != nil {
		return err
	}

	// Rules recorded in saved calculations are immutable history.
	usage, err := s.payrollRepo.CountPayRuleUsage(ctx, rule.Name, companyID)
	if err != nil {
		return err
	}
	if usage > 0 {
		return payroll.ErrPayRuleInUse
	}

	return s.payrollRepo.DeletePayRule(ctx, id, companyID)
}

// ========== CALCULATION ==========

func (s *PayrollServiceImpl) Calculate(ctx context.Context, req payroll.CalculateRequest) (payroll.CalculateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CalculateResponse{}, err
	}

	companyID, userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.CalculateResponse{}, err
	}
	if role != user.RoleAdmin {
		return payroll.CalculateResponse{}, payroll.ErrCalculationForbidden
	}

	start, _ := time.Parse("2006-01-02", req.PayPeriodStart)
	end, _ := time.Parse("2006-01-02", req.PayPeriodEnd)

	employees, missing, err := s.resolveEmployees(ctx, companyID, req.EmployeeIDs)
	if err != nil {
		return payroll.CalculateResponse{}, err
	}
	if len(employees) == 0 && len(missing) == 0 {
		return payroll.CalculateResponse{}, payroll.ErrNoActiveEmployees
	}

	rules, skipped, err := s.payrollRepo.GetActivePayRules(ctx, companyID)
	if err != nil {
		return payroll.CalculateResponse{}, err
	}
	for _, name := range skipped {
		slog.Warn("skipping pay rule with undecodable config", "rule", name, "company_id", companyID)
	}

	payCodes, err := s.loadPayCodes(ctx, companyID)
	if err != nil {
		return payroll.CalculateResponse{}, err
	}

	employeeIDs := make([]string, 0, len(employees))
	for _, emp := range employees {
		employeeIDs = append(employeeIDs, emp.ID)
	}

	entries, err := s.timeEntryRepo.GetForPayPeriod(ctx, companyID, employeeIDs, start, end)
	if err != nil {
		return payroll.CalculateResponse{}, err
	}

	entriesByEmployee := make(map[string][]timeentry.TimeEntry)
	for _, entry := range entries {
		entriesByEmployee[entry.EmployeeID] = append(entriesByEmployee[entry.EmployeeID], entry)
	}

	response := payroll.CalculateResponse{
		EmployeeResults: make(map[string]payroll.EmployeeResult),
	}

	var results []payroll.EmployeeResult
	for _, emp := range employees {
		result := CalculateEmployee(EngineInput{
			Employee: emp,
			Entries:  entriesByEmployee[emp.ID],
			Rules:    rules,
			PayCodes: payCodes,
		})
		response.EmployeeResults[emp.ID] = result
		response.Summary.Add(result.Summary)
		response.TotalHours += result.TotalHours
		results = append(results, result)
	}

	// Unknown or inactive ids in an explicit subset fail that employee,
	// not the batch.
	for _, id := range missing {
		response.EmployeeResults[id] = payroll.EmployeeResult{
			EmployeeID: id,
			Error:      payroll.ErrEmployeeNotFound.Error(),
		}
	}

	response.EmployeeCount = len(employees)

	if req.SaveResults {
		saved, err := s.saveResults(ctx, companyID, userID, start, end, results)
		if err != nil {
			// The calculation itself succeeded; report the persistence
			// failure without discarding the results.
			response.SaveError = err.Error()
		}
		response.SavedCalculations = saved
	}

	return response, nil
}

func (s *PayrollServiceImpl) resolveEmployees(ctx context.Context, companyID string, ids []string) ([]employee.Employee, []string, error) {
	if len(ids) == 0 {
		employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
		return employees, nil, err
	}

	employees, err := s.employeeRepo.GetActiveByIDs(ctx, companyID, ids)
	if err != nil {
		return nil, nil, err
	}

	found := make(map[string]bool, len(employees))
	for _, emp := range employees {
		found[emp.ID] = true
	}
	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return employees, missing, nil
}

func (s *PayrollServiceImpl) loadPayCodes(ctx context.Context, companyID string) (map[string]payroll.PayCode, error) {
	codes, err := s.payrollRepo.ListPayCodes(ctx, companyID, false)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]payroll.PayCode, len(codes))
	for _, code := range codes {
		byID[code.ID] = code
	}
	return byID, nil
}

func (s *PayrollServiceImpl) saveResults(ctx context.Context, companyID, userID string, start, end time.Time, results []payroll.EmployeeResult) ([]payroll.PayCalculationResponse, error) {
	var saved []payroll.PayCalculationResponse

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, result := range results {
			calc, err := s.payrollRepo.CreateCalculation(txCtx, payroll.PayCalculation{
				EmployeeID:         result.EmployeeID,
				CompanyID:          companyID,
				PayPeriodStart:     start,
				PayPeriodEnd:       end,
				TotalHours:         result.TotalHours,
				RegularHours:       result.Summary.RegularHours,
				OvertimeHours:      result.Summary.OvertimeHours,
				DoubleTimeHours:    result.Summary.DoubleTimeHours,
				TotalAllowances:    result.Summary.TotalAllowances,
				ShiftDifferentials: result.Summary.ShiftDifferentials,
				PayComponents:      result.PayComponents,
				CalculatedByID:     userID,
			})
			if err != nil {
				return err
			}
			saved = append(saved, toCalculationResponse(calc))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *PayrollServiceImpl) GetCalculation(ctx context.Context, id string) (payroll.PayCalculationResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayCalculationResponse{}, err
	}

	calc, err := s.payrollRepo.GetCalculationByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayCalculationResponse{}, err
	}
	return toCalculationResponse(calc), nil
}

func (s *PayrollServiceImpl) ListCalculations(ctx context.Context, filter payroll.CalculationFilter) (payroll.ListCalculationResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListCalculationResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	calcs, total, err := s.payrollRepo.ListCalculations(ctx, companyID, filter)
	if err != nil {
		return payroll.ListCalculationResponse{}, err
	}

	data := make([]payroll.PayCalculationResponse, 0, len(calcs))
	for _, calc := range calcs {
		data = append(data, toCalculationResponse(calc))
	}

	return payroll.ListCalculationResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// ========== MAPPERS ==========

func toPayCodeResponse(code payroll.PayCode) payroll.PayCodeResponse {
	return payroll.PayCodeResponse{
		ID:            code.ID,
		Code:          code.Code,
		Description:   code.Description,
		Multiplier:    code.Multiplier,
		IsTaxable:     code.IsTaxable,
		IsAbsenceCode: code.IsAbsenceCode,
		IsActive:      code.IsActive,
	}
}

func toPayRuleResponse(rule payroll.PayRule) payroll.PayRuleResponse {
	return payroll.PayRuleResponse{
		ID:          rule.ID,
		Name:        rule.Name,
		Description: rule.Description,
		Priority:    rule.Priority,
		IsActive:    rule.IsActive,
		Config:      rule.Config,
	}
}

func toCalculationResponse(calc payroll.PayCalculation) payroll.PayCalculationResponse {
	return payroll.PayCalculationResponse{
		ID:                 calc.ID,
		EmployeeID:         calc.EmployeeID,
		EmployeeName:       calc.EmployeeName,
		EmployeeCode:       calc.EmployeeCode,
		PayPeriodStart:     calc.PayPeriodStart.Format("2006-01-02"),
		PayPeriodEnd:       calc.PayPeriodEnd.Format("2006-01-02"),
		TotalHours:         calc.TotalHours,
		RegularHours:       calc.RegularHours,
		OvertimeHours:      calc.OvertimeHours,
		DoubleTimeHours:    calc.DoubleTimeHours,
		TotalAllowances:    calc.TotalAllowances,
		ShiftDifferentials: calc.ShiftDifferentials,
		PayComponents:      calc.PayComponents,
		CalculatedAt:       calc.CalculatedAt.Format(time.RFC3339),
	}
}
