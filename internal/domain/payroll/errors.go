package payroll

import "errors"

var (
	ErrPayCodeNotFound      = errors.New("pay code not found")
	ErrPayCodeExists        = errors.New("pay code already exists")
	ErrPayCodeInUse         = errors.New("pay code is referenced by time entries, deactivate instead")
	ErrPayRuleNotFound      = errors.New("pay rule not found")
	ErrPayRuleNameExists    = errors.New("pay rule name already exists")
	ErrPayRuleInUse         = errors.New("pay rule has been used in saved calculations, deactivate instead")
	ErrCalculationNotFound  = errors.New("pay calculation not found")
	ErrInvalidPayPeriod     = errors.New("pay period end must not be before start")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrNoActiveEmployees    = errors.New("no active employees to calculate")
	ErrCalculationForbidden = errors.New("only admins can calculate payroll")
)
