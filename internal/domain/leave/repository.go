package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, app Application) (Application, error)
	GetByID(ctx context.Context, id string, companyID string) (Application, error)
	List(ctx context.Context, companyID string, filter ApplicationFilter) ([]Application, int64, error)
	// HasOverlap checks pending and approved applications for the employee
	// against [start, end], excluding excludeID when non-empty.
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error)
	UpdateStatus(ctx context.Context, app Application) error
	// GetBalances aggregates pending and approved hours per absence pay
	// code for the employee, clipped to the given calendar year.
	GetBalances(ctx context.Context, companyID, employeeID string, year int) ([]BalanceRow, error)
}
