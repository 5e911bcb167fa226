package payroll

import (
	"testing"
	"time"

	"github.com/qhamayedwa/wfm-backend-go/internal/domain/employee"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/payroll"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/timeentry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:         "emp-1",
		FullName:   "Thandi Mokoena",
		HourlyRate: decimal.NewFromInt(250),
		Status:     employee.EmploymentStatusActive,
	}
}

func workedEntry(day time.Time, startHour int, hours float64, breakMinutes int) timeentry.TimeEntry {
	in := day.Add(time.Duration(startHour) * time.Hour)
	out := in.Add(time.Duration((hours*60)+float64(breakMinutes)) * time.Minute)
	return timeentry.TimeEntry{
		EmployeeID:   "emp-1",
		ClockInTime:  in,
		ClockOutTime: &out,
		BreakMinutes: breakMinutes,
		Status:       timeentry.StatusApproved,
	}
}

func leaveEntry(day time.Time, hours float64, payCodeID string) timeentry.TimeEntry {
	in := day.Add(9 * time.Hour)
	out := in.Add(time.Duration(hours*60) * time.Minute)
	return timeentry.TimeEntry{
		EmployeeID:   "emp-1",
		ClockInTime:  in,
		ClockOutTime: &out,
		Status:       timeentry.StatusApproved,
		PayCodeID:    &payCodeID,
	}
}

func overtimeRule(priority int, threshold float64, multiplier string) payroll.PayRule {
	return payroll.PayRule{
		Name:     "Daily Overtime",
		Priority: priority,
		IsActive: true,
		Config: payroll.RuleConfig{
			Type:     payroll.RuleTypeOvertime,
			Overtime: &payroll.OvertimeConfig{DailyThreshold: threshold, Multiplier: decimal.RequireFromString(multiplier), ComponentName: "overtime"},
		},
	}
}

func weekendRule(priority int, multiplier string) payroll.PayRule {
	return payroll.PayRule{
		Name:     "Weekend Double Time",
		Priority: priority,
		IsActive: true,
		Config: payroll.RuleConfig{
			Type:          payroll.RuleTypeDayMultiplier,
			DayMultiplier: &payroll.DayMultiplierConfig{DaysOfWeek: []int{0, 6}, Multiplier: decimal.RequireFromString(multiplier), ComponentName: "weekend"},
		},
	}
}

// monday is a plain weekday, saturday a weekend day.
var (
	monday   = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
)

func TestCalculateEmployeeNoEntries(t *testing.T) {
	result := CalculateEmployee(EngineInput{
		Employee: testEmployee(),
		Rules:    []payroll.PayRule{overtimeRule(1, 8, "1.5")},
	})

	assert.Zero(t, result.TotalHours)
	assert.Empty(t, result.PayComponents)
	assert.Zero(t, result.Summary.RegularHours)
	assert.Zero(t, result.Summary.OvertimeHours)
	assert.Zero(t, result.Summary.DoubleTimeHours)
}

func TestCalculateEmployeeDailyOvertime(t *testing.T) {
	// 10 hours on a weekday with an 8-hour threshold splits 8 regular
	// plus 2 overtime.
	result := CalculateEmployee(EngineInput{
		Employee: testEmployee(),
		Entries:  []timeentry.TimeEntry{workedEntry(monday, 8, 10, 0)},
		Rules:    []payroll.PayRule{overtimeRule(1, 8, "1.5")},
	})

	assert.InDelta(t, 10.0, result.TotalHours, 0.0001)
	assert.InDelta(t, 8.0, result.Summary.RegularHours, 0.0001)
	assert.InDelta(t, 2.0, result.Summary.OvertimeHours, 0.0001)

	ot, ok := result.PayComponents["overtime"]
	require.True(t, ok)
	assert.InDelta(t, 2.0, ot.Hours, 0.0001)
	// 2h x 250 x 1.5
	assert.True(t, ot.Amount.Equal(decimal.NewFromInt(750)), "got %s", ot.Amount)
	assert.Equal(t, []string{"Daily Overtime"}, ot.RulesApplied)

	reg := result.PayComponents["regular"]
	assert.True(t, reg.Amount.Equal(decimal.NewFromInt(2000)), "got %s", reg.Amount)
}

func TestCalculateEmployeeUnderThreshold(t *testing.T) {
	result := CalculateEmployee(EngineInput{
		Employee: testEmployee(),
		Entries:  []timeentry.TimeEntry{workedEntry(monday, 9, 7.5, 30)},
		Rules:    []payroll.PayRule{overtimeRule(1, 8, "1.5")},
	})

	assert.InDelta(t, 7.5, result.Summary.RegularHours, 0.0001)
	assert.Zero(t, result.Summary.OvertimeHours)
	_, hasOT := result.PayComponents["overtime"]
	assert.False(t, hasOT)
}

func TestCalculateEmployeeWeekendDoubleTime(t *testing.T) {
	// 6 hours on Saturday with a 2.0 weekend multiplier is all double
	// time, none regular.
	result := CalculateEmployee(EngineInput{
		Employee: testEmployee(),
		Entries:  []timeentry.TimeEntry{workedEntry(saturday, 9, 6, 0)},
		Rules:    []payroll.PayRule{weekendRule(1, "2.0"), overtimeRule(2, 8, "1.5")},
	})

	assert.InDelta(t, 6.0, result.TotalHours, 0.0001)
	assert.Zero(t, result.Summary.RegularHours)
	assert.InDelta(t, 6.0, result.Summary.DoubleTimeHours, 0.0001)

	weekend := result.PayComponents["weekend"]
	assert.True(t, weekend.Amount.Equal(decimal.NewFromInt(3000)), "got %s", weekend.Amount)
}

func TestCalculateEmployeeNoDoubleCounting(t *testing.T) {
	// A weekend rule ahead of overtime claims the whole day; the
	// overtime rule only sees what is left, so hours are never paid
	// twice.
	result := CalculateEmployee(EngineInput{
		Employee: testEmployee(),
		Entries:  []timeentry.TimeEntry{workedEntry(saturday, 7, 10, 0)},
		Rules:    []payroll.PayRule{weekendRule(1, "2.0"), overtimeRule(2, 8, "1.5")},
	})

	total := result.Summary.RegularHours + result.Summary.OvertimeHours + result.Summary.DoubleTimeHours
	assert.InDelta(t, 10.0, total, 0.0001)
	assert.InDelta(t, 10.0, result.Summary.DoubleTimeHours, 0.0001)
	_, hasOT := result.PayComponents["overtime"]
	assert.False(t, hasOT)
}

func TestCalculateEmployeeOvertimeBeforeWeekend(t *testing.T) {
	// With overtime at higher priority, it claims the 2 hours above the
	// threshold first and the weekend rule takes the remaining 8.
	result := CalculateEmployee(EngineInput{
		Employee: testEmployee(),
		Entries:  []timeentry.TimeEntry{workedEntry(saturday, 7, 10, 0)},
		Rules:    []payroll.PayRule{overtimeRule(1, 8, "1.5"), weekendRule(2, "2.0")},
	})

	assert.InDelta(t, 2.0, result.Summary.OvertimeHours, 0.0001)
	assert.InDelta(t, 8.0, result.Summary.DoubleTimeHours, 0.0001)
	assert.Zero(t, result.Summary.RegularHours)

	total := result.Summary.RegularHours + result.Summary.OvertimeHours + result.Summary.DoubleTimeHours
	assert.InDelta(t, 10.0, total, 0.0001)
}

func TestCalculateEmployeeHourConservation(t *testing.T) {
	// Whatever the rule stack does, classified hours always add back up
	// to the worked hours.
	entries := []timeentry.TimeEntry{
		workedEntry(monday, 8, 10, 30),
		workedEntry(monday.AddDate(0, 0, 1), 9, 8, 60),
		workedEntry(saturday, 10, 5.25, 0),
	}
	var worked float64
	for i := range entries {
		worked += entries[i].WorkedHours()
	}

	result := CalculateEmployee(EngineInput{
		Employee: testEmployee(),
		Entries:  entries,
		Rules:    []payroll.PayRule{weekendRule(1, "2.0"), overtimeRule(2, 8, "1.5")},
	})

	classified := result.Summary.RegularHours + result.Summary.OvertimeHours + result.Summary.DoubleTimeHours
	assert.InDelta(t, worked, classified, 0.0001)
	assert.InDelta(t, worked, result.TotalHours, 0.0001)
}

func TestCalculateEmployeeOpenEntryContributesZero(t *testing.T) {
	open := timeentry.TimeEntry{
		EmployeeID:  "emp-1",
		ClockInTime: monday.Add(8 * time.Hour),
		Status:      timeentry.StatusActive,
	}

	result := CalculateEmployee(EngineInput{
		Employee: testEmployee(),
		Entries:  []timeentry.TimeEntry{open, workedEntry(monday, 13, 4, 0)},
		Rules:    []payroll.PayRule{overtimeRule(1, 8, "1.5")},
	})

	assert.InDelta(t, 4.0, result.TotalHours, 0.0001)
	assert.InDelta(t, 4.0, result.Summary.RegularHours, 0.0001)
}

func TestCalculateEmployeeRejectedAndExceptionExcluded(t *testing.T) {
	rejected := workedEntry(monday, 8, 8, 0)
	rejected.Status = timeentry.StatusRejected
	exception := workedEntry(monday.AddDate(0, 0, 1), 8, 8, 0)
	exception.Status = timeentry.StatusException

	result := CalculateEmployee(EngineInput{
		Employee: testEmployee(),
		Entries:  []timeentry.TimeEntry{rejected, exception},
		Rules:    []payroll.PayRule{overtimeRule(1, 8, "1.5")},
	})

	assert.Zero(t, result.TotalHours)
	assert.Empty(t, result.PayComponents)
}

func TestCalculateEmployeeLeaveOutsideOvertime(t *testing.T) {
	// 8 worked plus 8 leave on the same day: leave hours never push the
	// worked hours over the overtime threshold.
	payCode := payroll.PayCode{
		ID:         "pc-1",
		Code:       "ANNUAL",
		Multiplier: decimal.NewFromInt(1),
	}

	result := CalculateEmployee(EngineInput{
		Employee: testEmployee(),
		Entries: []timeentry.TimeEntry{
			workedEntry(monday, 8, 8, 0),
			leaveEntry(monday.AddDate(0, 0, 1), 8, "pc-1"),
		},
		Rules:    []payroll.PayRule{overtimeRule(1, 8, "1.5")},
		PayCodes: map[string]payroll.PayCode{"pc-1": payCode},
	})

	assert.InDelta(t, 16.0, result.TotalHours, 0.0001)
	assert.Zero(t, result.Summary.OvertimeHours)

	leaveComp, ok := result.PayComponents["leave_ANNUAL"]
	require.True(t, ok)
	assert.Equal(t, payroll.ComponentTypeLeave, leaveComp.Type)
	assert.InDelta(t, 8.0, leaveComp.Hours, 0.0001)
	// 8h x 250 x 1.0
	assert.True(t, leaveComp.Amount.Equal(decimal.NewFromInt(2000)), "got %s", leaveComp.Amount)
}

func TestCalculateEmployeeLeaveWithMultiplier(t *testing.T) {
	payCode := payroll.PayCode{
		ID:         "pc-2",
		Code:       "SICK_HALF",
		Multiplier: decimal.RequireFromString("0.5"),
	}

	result := CalculateEmployee(EngineInput{
		Employee: testEmployee(),
		Entries:  []timeentry.TimeEntry{leaveEntry(monday, 8, "pc-2")},
		PayCodes: map[string]payroll.PayCode{"pc-2": payCode},
	})

	comp := result.PayComponents["leave_SICK_HALF"]
	// 8h x 250 x 0.5
	assert.True(t, comp.Amount.Equal(decimal.NewFromInt(1000)), "got %s", comp.Amount)
}

func TestCalculateEmployeeShiftDifferential(t *testing.T) {
	nightRule := payroll.PayRule{
		Name:     "Night Shift",
		Priority: 3,
		IsActive: true,
		Config: payroll.RuleConfig{
			Type: payroll.RuleTypeShiftDifferential,
			ShiftDifferential: &payroll.ShiftDifferentialConfig{
				StartHour: 22, EndHour: 6,
				AmountPerHour: decimal.RequireFromString("12.50"),
				ComponentName: "night_diff",
			},
		},
	}

	// Clock in at 22:00 for 8 hours, crossing midnight.
	result := CalculateEmployee(EngineInput{
		Employee: testEmployee(),
		Entries:  []timeentry.TimeEntry{workedEntry(monday, 22, 8, 0)},
		Rules:    []payroll.PayRule{overtimeRule(1, 8, "1.5"), nightRule},
	})

	diff, ok := result.PayComponents["night_diff"]
	require.True(t, ok)
	assert.Equal(t, payroll.ComponentTypeDifferential, diff.Type)
	// 8h x 12.50, on top of the regular classification
	assert.True(t, diff.Amount.Equal(decimal.NewFromInt(100)), "got %s", diff.Amount)
	assert.True(t, result.Summary.ShiftDifferentials.Equal(decimal.NewFromInt(100)))

	// The differential stacks; the hours still classify as regular and
	// the overnight hours stay on the clock-in date.
	assert.InDelta(t, 8.0, result.Summary.RegularHours, 0.0001)

	dayRule := result.PayComponents["regular"]
	assert.InDelta(t, 8.0, dayRule.Hours, 0.0001)
}

func TestCalculateEmployeeDayShiftNoDifferential(t *testing.T) {
	nightRule := payroll.PayRule{
		Name:     "Night Shift",
		Priority: 3,
		IsActive: true,
		Config: payroll.RuleConfig{
			Type: payroll.RuleTypeShiftDifferential,
			ShiftDifferential: &payroll.ShiftDifferentialConfig{
				StartHour: 22, EndHour: 6,
				AmountPerHour: decimal.RequireFromString("12.50"),
				ComponentName: "night_diff",
			},
		},
	}

	result := CalculateEmployee(EngineInput{
		Employee: testEmployee(),
		Entries:  []timeentry.TimeEntry{workedEntry(monday, 9, 8, 0)},
		Rules:    []payroll.PayRule{nightRule},
	})

	_, ok := result.PayComponents["night_diff"]
	assert.False(t, ok)
}

func TestCalculateEmployeeAllowance(t *testing.T) {
	mealRule := payroll.PayRule{
		Name:     "Meal Allowance",
		Priority: 5,
		IsActive: true,
		Config: payroll.RuleConfig{
			Type:      payroll.RuleTypeAllowance,
			Allowance: &payroll.AllowanceConfig{Amount: decimal.NewFromInt(50), ComponentName: "meal"},
		},
	}

	result := CalculateEmployee(EngineInput{
		Employee: testEmployee(),
		Entries: []timeentry.TimeEntry{
			workedEntry(monday, 9, 8, 0),
			workedEntry(monday.AddDate(0, 0, 1), 9, 8, 0),
		},
		Rules: []payroll.PayRule{mealRule},
	})

	meal := result.PayComponents["meal"]
	// 50 per worked day, two days
	assert.True(t, meal.Amount.Equal(decimal.NewFromInt(100)), "got %s", meal.Amount)
	assert.True(t, result.Summary.TotalAllowances.Equal(decimal.NewFromInt(100)))
}

func TestCalculateEmployeeHolidayMultiplier(t *testing.T) {
	holidayRule := payroll.PayRule{
		Name:     "Public Holiday",
		Priority: 1,
		IsActive: true,
		Config: payroll.RuleConfig{
			Type: payroll.RuleTypeDayMultiplier,
			DayMultiplier: &payroll.DayMultiplierConfig{
				Holidays:      []string{"2025-06-02"},
				Multiplier:    decimal.RequireFromString("2.5"),
				ComponentName: "holiday",
			},
		},
	}

	result := CalculateEmployee(EngineInput{
		Employee: testEmployee(),
		Entries:  []timeentry.TimeEntry{workedEntry(monday, 9, 8, 0)},
		Rules:    []payroll.PayRule{holidayRule},
	})

	holiday := result.PayComponents["holiday"]
	assert.InDelta(t, 8.0, holiday.Hours, 0.0001)
	// 8h x 250 x 2.5
	assert.True(t, holiday.Amount.Equal(decimal.NewFromInt(5000)), "got %s", holiday.Amount)
	assert.InDelta(t, 8.0, result.Summary.DoubleTimeHours, 0.0001)
}

func TestCalculateEmployeeDeterministic(t *testing.T) {
	input := EngineInput{
		Employee: testEmployee(),
		Entries: []timeentry.TimeEntry{
			workedEntry(monday, 8, 10, 30),
			workedEntry(saturday, 9, 6, 0),
		},
		Rules: []payroll.PayRule{weekendRule(1, "2.0"), overtimeRule(2, 8, "1.5")},
	}

	first := CalculateEmployee(input)
	second := CalculateEmployee(input)

	assert.Equal(t, first.TotalHours, second.TotalHours)
	assert.Equal(t, first.Summary, second.Summary)
	require.Equal(t, len(first.PayComponents), len(second.PayComponents))
	for key, comp := range first.PayComponents {
		other := second.PayComponents[key]
		assert.Equal(t, comp.Hours, other.Hours)
		assert.True(t, comp.Amount.Equal(other.Amount))
		assert.Equal(t, comp.RulesApplied, other.RulesApplied)
	}
}

func TestInHourWindow(t *testing.T) {
	// 22-6 wraps midnight
	assert.True(t, inHourWindow(23, 22, 6))
	assert.True(t, inHourWindow(2, 22, 6))
	assert.False(t, inHourWindow(12, 22, 6))
	// plain window
	assert.True(t, inHourWindow(10, 9, 17))
	assert.False(t, inHourWindow(17, 9, 17))
	// empty window matches nothing
	assert.False(t, inHourWindow(10, 10, 10))
}
