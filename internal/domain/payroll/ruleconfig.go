package payroll

import (
	"encoding/json"
	"strings"

	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// RuleType discriminates the typed rule configuration.
type RuleType string

const (
	// RuleTypeOvertime reclassifies daily hours above a threshold.
	RuleTypeOvertime RuleType = "overtime"
	// RuleTypeDayMultiplier reclassifies all hours on matching days
	// (weekends via DaysOfWeek, public holidays via Holidays).
	RuleTypeDayMultiplier RuleType = "day_multiplier"
	// RuleTypeShiftDifferential adds a flat per-hour amount for hours
	// inside a time window, on top of the base classification.
	RuleTypeShiftDifferential RuleType = "shift_differential"
	// RuleTypeAllowance adds a flat amount per matching day.
	RuleTypeAllowance RuleType = "allowance"
)

// RuleConfig is a tagged variant: exactly one payload matching Type must be
// set. Configs are validated when rules are created or loaded, so a
// malformed payload is rejected up front instead of being silently skipped
// during calculation.
type RuleConfig struct {
	Type              RuleType                 `json:"type"`
	Overtime          *OvertimeConfig          `json:"overtime,omitempty"`
	DayMultiplier     *DayMultiplierConfig     `json:"day_multiplier,omitempty"`
	ShiftDifferential *ShiftDifferentialConfig `json:"shift_differential,omitempty"`
	Allowance         *AllowanceConfig         `json:"allowance,omitempty"`
}

type OvertimeConfig struct {
	// DailyThreshold is the worked-hours boundary per calendar day;
	// hours above it are claimed by this rule.
	DailyThreshold float64         `json:"daily_threshold"`
	Multiplier     decimal.Decimal `json:"multiplier"`
	ComponentName  string          `json:"component_name,omitempty"`
}

type DayMultiplierConfig struct {
	// DaysOfWeek uses 0=Sunday .. 6=Saturday.
	DaysOfWeek []int `json:"days_of_week,omitempty"`
	// Holidays lists specific dates (YYYY-MM-DD) the rule also matches.
	Holidays      []string        `json:"holidays,omitempty"`
	Multiplier    decimal.Decimal `json:"multiplier"`
	ComponentName string          `json:"component_name,omitempty"`
}

type ShiftDifferentialConfig struct {
	// StartHour/EndHour bound the window by clock-in hour; a window with
	// StartHour > EndHour spans midnight (e.g. 22 to 6).
	StartHour     int             `json:"start_hour"`
	EndHour       int             `json:"end_hour"`
	AmountPerHour decimal.Decimal `json:"amount_per_hour"`
	ComponentName string          `json:"component_name,omitempty"`
}

type AllowanceConfig struct {
	Amount decimal.Decimal `json:"amount"`
	// DaysOfWeek optionally restricts the allowance; empty means every
	// day with worked hours.
	DaysOfWeek    []int  `json:"days_of_week,omitempty"`
	ComponentName string `json:"component_name,omitempty"`
}

// Validate checks the variant invariant and the payload fields.
func (c RuleConfig) Validate() error {
	var errs validator.ValidationErrors

	payloads := 0
	if c.Overtime != nil {
		payloads++
	}
	if c.DayMultiplier != nil {
		payloads++
	}
	if c.ShiftDifferential != nil {
		payloads++
	}
	if c.Allowance != nil {
		payloads++
	}
	if payloads != 1 {
		errs = append(errs, validator.ValidationError{Field: "config", Message: "exactly one rule payload must be set"})
		return errs
	}

	switch c.Type {
	case RuleTypeOvertime:
		if c.Overtime == nil {
			errs = append(errs, validator.ValidationError{Field: "overtime", Message: "payload does not match type"})
			break
		}
		if c.Overtime.DailyThreshold <= 0 {
			errs = append(errs, validator.ValidationError{Field: "overtime.daily_threshold", Message: "must be positive"})
		}
		if c.Overtime.Multiplier.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, validator.ValidationError{Field: "overtime.multiplier", Message: "must be positive"})
		}
	case RuleTypeDayMultiplier:
		if c.DayMultiplier == nil {
			errs = append(errs, validator.ValidationError{Field: "day_multiplier", Message: "payload does not match type"})
			break
		}
		if len(c.DayMultiplier.DaysOfWeek) == 0 && len(c.DayMultiplier.Holidays) == 0 {
			errs = append(errs, validator.ValidationError{Field: "day_multiplier.days_of_week", Message: "days_of_week or holidays is required"})
		}
		for _, d := range c.DayMultiplier.DaysOfWeek {
			if !validator.IsValidWeekday(d) {
				errs = append(errs, validator.ValidationError{Field: "day_multiplier.days_of_week", Message: "weekdays must be 0 (Sunday) through 6 (Saturday)"})
				break
			}
		}
		for _, h := range c.DayMultiplier.Holidays {
			if _, ok := validator.IsValidDate(h); !ok {
				errs = append(errs, validator.ValidationError{Field: "day_multiplier.holidays", Message: "holidays must be YYYY-MM-DD"})
				break
			}
		}
		if c.DayMultiplier.Multiplier.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, validator.ValidationError{Field: "day_multiplier.multiplier", Message: "must be positive"})
		}
	case RuleTypeShiftDifferential:
		if c.ShiftDifferential == nil {
			errs = append(errs, validator.ValidationError{Field: "shift_differential", Message: "payload does not match type"})
			break
		}
		if c.ShiftDifferential.StartHour < 0 || c.ShiftDifferential.StartHour > 23 {
			errs = append(errs, validator.ValidationError{Field: "shift_differential.start_hour", Message: "must be between 0 and 23"})
		}
		if c.ShiftDifferential.EndHour < 0 || c.ShiftDifferential.EndHour > 23 {
			errs = append(errs, validator.ValidationError{Field: "shift_differential.end_hour", Message: "must be between 0 and 23"})
		}
		if c.ShiftDifferential.AmountPerHour.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, validator.ValidationError{Field: "shift_differential.amount_per_hour", Message: "must be positive"})
		}
	case RuleTypeAllowance:
		if c.Allowance == nil {
			errs = append(errs, validator.ValidationError{Field: "allowance", Message: "payload does not match type"})
			break
		}
		if c.Allowance.Amount.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, validator.ValidationError{Field: "allowance.amount", Message: "must be positive"})
		}
		for _, d := range c.Allowance.DaysOfWeek {
			if !validator.IsValidWeekday(d) {
				errs = append(errs, validator.ValidationError{Field: "allowance.days_of_week", Message: "weekdays must be 0 (Sunday) through 6 (Saturday)"})
				break
			}
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be overtime, day_multiplier, shift_differential, or allowance"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ComponentName returns the configured component name, falling back to the
// rule name lower-cased with underscores.
func (c RuleConfig) ComponentName(ruleName string) string {
	var name string
	switch c.Type {
	case RuleTypeOvertime:
		if c.Overtime != nil {
			name = c.Overtime.ComponentName
		}
	case RuleTypeDayMultiplier:
		if c.DayMultiplier != nil {
			name = c.DayMultiplier.ComponentName
		}
	case RuleTypeShiftDifferential:
		if c.ShiftDifferential != nil {
			name = c.ShiftDifferential.ComponentName
		}
	case RuleTypeAllowance:
		if c.Allowance != nil {
			name = c.Allowance.ComponentName
		}
	}
	if name != "" {
		return name
	}
	return strings.ReplaceAll(strings.ToLower(ruleName), " ", "_")
}

// DecodeRuleConfig parses a stored JSON payload and validates it.
func DecodeRuleConfig(raw []byte) (RuleConfig, error) {
	var cfg RuleConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return RuleConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RuleConfig{}, err
	}
	return cfg, nil
}

// Encode serializes the config for storage.
func (c RuleConfig) Encode() ([]byte, error) {
	return json.Marshal(c)
}
