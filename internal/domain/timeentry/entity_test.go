package timeentry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(value string) *time.Time {
	t := ts(value)
	return &t
}

func TestWorkedHours(t *testing.T) {
	tests := []struct {
		name  string
		entry TimeEntry
		want  float64
	}{
		{
			name: "full day with lunch break",
			entry: TimeEntry{
				ClockInTime:  ts("2025-03-03T08:00:00Z"),
				ClockOutTime: tsp("2025-03-03T17:00:00Z"),
				BreakMinutes: 60,
			},
			want: 8.0,
		},
		{
			name: "open entry contributes zero",
			entry: TimeEntry{
				ClockInTime: ts("2025-03-03T08:00:00Z"),
			},
			want: 0,
		},
		{
			name: "break exceeding span clamps to zero",
			entry: TimeEntry{
				ClockInTime:  ts("2025-03-03T08:00:00Z"),
				ClockOutTime: tsp("2025-03-03T08:30:00Z"),
				BreakMinutes: 60,
			},
			want: 0,
		},
		{
			name: "half hours are exact",
			entry: TimeEntry{
				ClockInTime:  ts("2025-03-03T09:00:00Z"),
				ClockOutTime: tsp("2025-03-03T15:00:00Z"),
				BreakMinutes: 30,
			},
			want: 5.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.entry.WorkedHours(), 1e-9)
		})
	}
}

func TestWorkDateAttributesOvernightToClockInDate(t *testing.T) {
	entry := TimeEntry{
		ClockInTime:  ts("2025-03-03T22:00:00Z"),
		ClockOutTime: tsp("2025-03-04T06:00:00Z"),
	}

	assert.Equal(t, ts("2025-03-03T00:00:00Z"), entry.WorkDate())
	assert.InDelta(t, 8.0, entry.WorkedHours(), 1e-9)
}

func TestCountsForPayroll(t *testing.T) {
	closed := TimeEntry{
		ClockInTime:  ts("2025-03-03T08:00:00Z"),
		ClockOutTime: tsp("2025-03-03T16:00:00Z"),
		Status:       StatusApproved,
	}
	assert.True(t, closed.CountsForPayroll())

	open := TimeEntry{ClockInTime: ts("2025-03-03T08:00:00Z"), Status: StatusActive}
	assert.False(t, open.CountsForPayroll())

	rejected := closed
	rejected.Status = StatusRejected
	assert.False(t, rejected.CountsForPayroll())

	exception := closed
	exception.Status = StatusException
	assert.False(t, exception.CountsForPayroll())
}
