package schedule

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id string, companyID string) (Shift, error)
	List(ctx context.Context, companyID string, filter ShiftFilter) ([]Shift, int64, error)
	// GetOverlapping returns shifts for the employee intersecting
	// [start, end), excluding excludeID when non-empty.
	GetOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) ([]Shift, error)
	Update(ctx context.Context, shift Shift) error
	SetPublished(ctx context.Context, id string, companyID string, publishedAt *time.Time) error
	Delete(ctx context.Context, id string, companyID string) error
}
