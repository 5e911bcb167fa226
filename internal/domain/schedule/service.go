package schedule

import "context"

type ScheduleService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetShift(ctx context.Context, id string) (ShiftResponse, error)
	ListShifts(ctx context.Context, filter ShiftFilter) (ListShiftResponse, error)
	UpdateShift(ctx context.Context, req UpdateShiftRequest) error
	// PublishShift makes the shift visible to the employee.
	PublishShift(ctx context.Context, id string) error
	UnpublishShift(ctx context.Context, id string) error
	DeleteShift(ctx context.Context, id string) error
}
