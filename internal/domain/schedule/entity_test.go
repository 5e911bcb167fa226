package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShiftConflictsWith(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	shift := func(emp string, startHour, endHour int) *Shift {
		return &Shift{
			EmployeeID: emp,
			StartTime:  day.Add(time.Duration(startHour) * time.Hour),
			EndTime:    day.Add(time.Duration(endHour) * time.Hour),
		}
	}

	tests := []struct {
		name string
		a, b *Shift
		want bool
	}{
		{"overlapping shifts conflict", shift("e1", 9, 17), shift("e1", 16, 22), true},
		{"contained shift conflicts", shift("e1", 9, 17), shift("e1", 10, 12), true},
		{"back to back does not conflict", shift("e1", 9, 17), shift("e1", 17, 22), false},
		{"disjoint does not conflict", shift("e1", 9, 12), shift("e1", 14, 18), false},
		{"different employees never conflict", shift("e1", 9, 17), shift("e2", 9, 17), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.ConflictsWith(tt.b))
			assert.Equal(t, tt.want, tt.b.ConflictsWith(tt.a))
		})
	}
}

func TestShiftHours(t *testing.T) {
	s := &Shift{
		StartTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 2, 17, 30, 0, 0, time.UTC),
	}
	assert.InDelta(t, 8.5, s.Hours(), 0.0001)
}
