package payroll

import (
	"time"

	"github.com/qhamayedwa/wfm-backend-go/internal/domain/employee"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/payroll"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/timeentry"
	"github.com/shopspring/decimal"
)

// regularComponent is the bucket for hours no rule claimed.
const regularComponent = "regular"

// EngineInput is everything one employee's calculation depends on. The
// engine itself holds no state, so identical input always produces an
// identical result.
type EngineInput struct {
	Employee employee.Employee
	// Entries are the employee's time entries for the period; entries that
	// do not count for payroll are skipped here, not by the caller.
	Entries []timeentry.TimeEntry
	// Rules must be ordered by ascending priority. Each worked hour is
	// claimed by at most one reclassifying rule; later rules only see
	// hours earlier rules left unclaimed.
	Rules []payroll.PayRule
	// PayCodes maps pay code id to code, for valuing leave entries.
	PayCodes map[string]payroll.PayCode
}

// dayBucket accumulates one calendar day's worked entries.
type dayBucket struct {
	date    time.Time
	total   float64
	entries []timeentry.TimeEntry
}

// CalculateEmployee runs the rule engine for one employee over a pay
// period. Worked hours flow through the prioritized rules; leave entries
// are valued directly through their pay code and never enter the
// overtime logic.
func CalculateEmployee(in EngineInput) payroll.EmployeeResult {
	result := payroll.EmployeeResult{
		EmployeeID:    in.Employee.ID,
		EmployeeName:  in.Employee.FullName,
		PayComponents: make(map[string]payroll.PayComponent),
	}

	days := groupWorkedByDay(in.Entries)

	for _, day := range days {
		applyRulesToDay(&result, in, day)
	}

	applyLeave(&result, in)

	result.Summary = summarize(result.PayComponents)
	return result
}

// groupWorkedByDay buckets payroll-eligible worked entries by their
// clock-in date, preserving chronological day order.
func groupWorkedByDay(entries []timeentry.TimeEntry) []dayBucket {
	byDate := make(map[string]*dayBucket)
	var order []string

	for i := range entries {
		e := entries[i]
		if !e.CountsForPayroll() || e.IsLeave() {
			continue
		}
		key := e.WorkDate().Format("2006-01-02")
		bucket, ok := byDate[key]
		if !ok {
			bucket = &dayBucket{date: e.WorkDate()}
			byDate[key] = bucket
			order = append(order, key)
		}
		bucket.total += e.WorkedHours()
		bucket.entries = append(bucket.entries, e)
	}

	days := make([]dayBucket, 0, len(order))
	for _, key := range order {
		days = append(days, *byDate[key])
	}
	return days
}

// applyRulesToDay distributes one day's worked hours across the rules.
func applyRulesToDay(result *payroll.EmployeeResult, in EngineInput, day dayBucket) {
	if day.total <= 0 {
		return
	}

	rate := in.Employee.HourlyRate
	unclaimed := day.total

	for _, rule := range in.Rules {
		switch rule.Config.Type {
		case payroll.RuleTypeDayMultiplier:
			cfg := rule.Config.DayMultiplier
			if !matchesDay(day.date, cfg.DaysOfWeek, cfg.Holidays) || unclaimed <= 0 {
				continue
			}
			addHoursComponent(result, rule.Config.ComponentName(rule.Name), rule.Name, unclaimed, rate, cfg.Multiplier)
			unclaimed = 0

		case payroll.RuleTypeOvertime:
			cfg := rule.Config.Overtime
			over := day.total - cfg.DailyThreshold
			if over <= 0 || unclaimed <= 0 {
				continue
			}
			if over > unclaimed {
				over = unclaimed
			}
			addHoursComponent(result, rule.Config.ComponentName(rule.Name), rule.Name, over, rate, cfg.Multiplier)
			unclaimed -= over

		case payroll.RuleTypeShiftDifferential:
			// Differentials stack on top of whatever classification the
			// hours end up with, so they never claim from the pool.
			cfg := rule.Config.ShiftDifferential
			for i := range day.entries {
				e := day.entries[i]
				if !inHourWindow(e.ClockInTime.Hour(), cfg.StartHour, cfg.EndHour) {
					continue
				}
				hours := e.WorkedHours()
				if hours <= 0 {
					continue
				}
				addDifferentialComponent(result, rule.Config.ComponentName(rule.Name), rule.Name, hours, cfg.AmountPerHour)
			}

		case payroll.RuleTypeAllowance:
			cfg := rule.Config.Allowance
			if len(cfg.DaysOfWeek) > 0 && !matchesDay(day.date, cfg.DaysOfWeek, nil) {
				continue
			}
			addAllowanceComponent(result, rule.Config.ComponentName(rule.Name), rule.Name, cfg.Amount)
		}
	}

	if unclaimed > 0 {
		addHoursComponent(result, regularComponent, "", unclaimed, rate, decimal.NewFromInt(1))
	}

	result.TotalHours += day.total
}

// applyLeave values leave entries at pay code multiplier times hourly
// rate, keyed by the pay code.
func applyLeave(result *payroll.EmployeeResult, in EngineInput) {
	for i := range in.Entries {
		e := in.Entries[i]
		if !e.CountsForPayroll() || !e.IsLeave() {
			continue
		}
		code, ok := in.PayCodes[*e.PayCodeID]
		if !ok {
			continue
		}
		hours := e.WorkedHours()
		if hours <= 0 {
			continue
		}

		key := "leave_" + code.Code
		comp := result.PayComponents[key]
		comp.Type = payroll.ComponentTypeLeave
		comp.Multiplier = code.Multiplier
		comp.Hours += hours
		comp.Amount = comp.Amount.Add(
			in.Employee.HourlyRate.Mul(code.Multiplier).Mul(decimal.NewFromFloat(hours)),
		)
		result.PayComponents[key] = comp
		result.TotalHours += hours
	}
}

func addHoursComponent(result *payroll.EmployeeResult, key, ruleName string, hours float64, rate, multiplier decimal.Decimal) {
	comp := result.PayComponents[key]
	if key == regularComponent {
		comp.Type = payroll.ComponentTypeRegular
	} else {
		comp.Type = payroll.ComponentTypeHours
	}
	comp.Multiplier = multiplier
	comp.Hours += hours
	comp.Amount = comp.Amount.Add(rate.Mul(multiplier).Mul(decimal.NewFromFloat(hours)))
	if ruleName != "" && !contains(comp.RulesApplied, ruleName) {
		comp.RulesApplied = append(comp.RulesApplied, ruleName)
	}
	result.PayComponents[key] = comp
}

func addDifferentialComponent(result *payroll.EmployeeResult, key, ruleName string, hours float64, amountPerHour decimal.Decimal) {
	comp := result.PayComponents[key]
	comp.Type = payroll.ComponentTypeDifferential
	comp.Differential = amountPerHour
	comp.Hours += hours
	comp.Amount = comp.Amount.Add(amountPerHour.Mul(decimal.NewFromFloat(hours)))
	if !contains(comp.RulesApplied, ruleName) {
		comp.RulesApplied = append(comp.RulesApplied, ruleName)
	}
	result.PayComponents[key] = comp
}

func addAllowanceComponent(result *payroll.EmployeeResult, key, ruleName string, amount decimal.Decimal) {
	comp := result.PayComponents[key]
	comp.Type = payroll.ComponentTypeAllowance
	comp.Amount = comp.Amount.Add(amount)
	if !contains(comp.RulesApplied, ruleName) {
		comp.RulesApplied = append(comp.RulesApplied, ruleName)
	}
	result.PayComponents[key] = comp
}

// summarize classifies hour components by multiplier and totals the
// flat-amount components.
func summarize(components map[string]payroll.PayComponent) payroll.PaySummary {
	var sum payroll.PaySummary
	two := decimal.NewFromInt(2)
	one := decimal.NewFromInt(1)

	for _, comp := range components {
		switch comp.Type {
		case payroll.ComponentTypeRegular, payroll.ComponentTypeHours:
			switch {
			case comp.Multiplier.GreaterThanOrEqual(two):
				sum.DoubleTimeHours += comp.Hours
			case comp.Multiplier.GreaterThan(one):
				sum.OvertimeHours += comp.Hours
			default:
				sum.RegularHours += comp.Hours
			}
		case payroll.ComponentTypeAllowance:
			sum.TotalAllowances = sum.TotalAllowances.Add(comp.Amount)
		case payroll.ComponentTypeDifferential:
			sum.ShiftDifferentials = sum.ShiftDifferentials.Add(comp.Amount)
		}
	}
	return sum
}

// matchesDay reports whether date falls on one of the weekdays
// (0=Sunday..6=Saturday) or one of the holiday dates.
func matchesDay(date time.Time, daysOfWeek []int, holidays []string) bool {
	weekday := int(date.Weekday())
	for _, d := range daysOfWeek {
		if d == weekday {
			return true
		}
	}
	formatted := date.Format("2006-01-02")
	for _, h := range holidays {
		if h == formatted {
			return true
		}
	}
	return false
}

// inHourWindow reports whether hour falls inside [start, end); a window
// with start > end wraps past midnight.
func inHourWindow(hour, start, end int) bool {
	if start == end {
		return false
	}
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
