package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  RuleConfig
		wantErr bool
	}{
		{
			name: "valid overtime",
			config: RuleConfig{
				Type:     RuleTypeOvertime,
				Overtime: &OvertimeConfig{DailyThreshold: 8, Multiplier: decimal.RequireFromString("1.5")},
			},
		},
		{
			name: "overtime missing threshold",
			config: RuleConfig{
				Type:     RuleTypeOvertime,
				Overtime: &OvertimeConfig{Multiplier: decimal.RequireFromString("1.5")},
			},
			wantErr: true,
		},
		{
			name: "overtime missing multiplier",
			config: RuleConfig{
				Type:     RuleTypeOvertime,
				Overtime: &OvertimeConfig{DailyThreshold: 8},
			},
			wantErr: true,
		},
		{
			name: "valid weekend double time",
			config: RuleConfig{
				Type:          RuleTypeDayMultiplier,
				DayMultiplier: &DayMultiplierConfig{DaysOfWeek: []int{0, 6}, Multiplier: decimal.RequireFromString("2.0")},
			},
		},
		{
			name: "valid holiday double time",
			config: RuleConfig{
				Type:          RuleTypeDayMultiplier,
				DayMultiplier: &DayMultiplierConfig{Holidays: []string{"2025-12-25"}, Multiplier: decimal.RequireFromString("2.0")},
			},
		},
		{
			name: "day multiplier with out-of-range weekday",
			config: RuleConfig{
				Type:          RuleTypeDayMultiplier,
				DayMultiplier: &DayMultiplierConfig{DaysOfWeek: []int{7}, Multiplier: decimal.RequireFromString("2.0")},
			},
			wantErr: true,
		},
		{
			name: "day multiplier without days or holidays",
			config: RuleConfig{
				Type:          RuleTypeDayMultiplier,
				DayMultiplier: &DayMultiplierConfig{Multiplier: decimal.RequireFromString("2.0")},
			},
			wantErr: true,
		},
		{
			name: "valid night shift differential",
			config: RuleConfig{
				Type:              RuleTypeShiftDifferential,
				ShiftDifferential: &ShiftDifferentialConfig{StartHour: 22, EndHour: 6, AmountPerHour: decimal.RequireFromString("12.50")},
			},
		},
		{
			name: "shift differential hour out of range",
			config: RuleConfig{
				Type:              RuleTypeShiftDifferential,
				ShiftDifferential: &ShiftDifferentialConfig{StartHour: 24, EndHour: 6, AmountPerHour: decimal.RequireFromString("12.50")},
			},
			wantErr: true,
		},
		{
			name: "payload not matching type",
			config: RuleConfig{
				Type:     RuleTypeDayMultiplier,
				Overtime: &OvertimeConfig{DailyThreshold: 8, Multiplier: decimal.RequireFromString("1.5")},
			},
			wantErr: true,
		},
		{
			name: "two payloads set",
			config: RuleConfig{
				Type:          RuleTypeOvertime,
				Overtime:      &OvertimeConfig{DailyThreshold: 8, Multiplier: decimal.RequireFromString("1.5")},
				DayMultiplier: &DayMultiplierConfig{DaysOfWeek: []int{0}, Multiplier: decimal.RequireFromString("2.0")},
			},
			wantErr: true,
		},
		{
			name:    "no payload",
			config:  RuleConfig{Type: RuleTypeOvertime},
			wantErr: true,
		},
		{
			name: "unknown type",
			config: RuleConfig{
				Type:     RuleType("bonus"),
				Overtime: &OvertimeConfig{DailyThreshold: 8, Multiplier: decimal.RequireFromString("1.5")},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecodeRuleConfig(t *testing.T) {
	raw := []byte(`{"type":"overtime","overtime":{"daily_threshold":8,"multiplier":"1.5"}}`)

	cfg, err := DecodeRuleConfig(raw)
	require.NoError(t, err)
	assert.Equal(t, RuleTypeOvertime, cfg.Type)
	assert.Equal(t, 8.0, cfg.Overtime.DailyThreshold)
	assert.True(t, cfg.Overtime.Multiplier.Equal(decimal.RequireFromString("1.5")))
}

func TestDecodeRuleConfigRejectsMalformedPayload(t *testing.T) {
	// Missing multiplier: a load-time validation error, not a silent
	// evaluation-time skip.
	raw := []byte(`{"type":"overtime","overtime":{"daily_threshold":8}}`)

	_, err := DecodeRuleConfig(raw)
	assert.Error(t, err)

	_, err = DecodeRuleConfig([]byte(`{not json`))
	assert.Error(t, err)
}

func TestComponentNameFallback(t *testing.T) {
	cfg := RuleConfig{
		Type:     RuleTypeOvertime,
		Overtime: &OvertimeConfig{DailyThreshold: 8, Multiplier: decimal.RequireFromString("1.5")},
	}
	assert.Equal(t, "overtime_1.5x", cfg.ComponentName("Overtime 1.5x"))

	cfg.Overtime.ComponentName = "ot_15"
	assert.Equal(t, "ot_15", cfg.ComponentName("Overtime 1.5x"))
}
