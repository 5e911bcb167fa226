package timeentry

import (
	"context"
	"time"
)

// TimeEntryRepository defines data access for time entries.
// All methods include companyID to keep tenants isolated.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id string, companyID string) (TimeEntry, error)
	Update(ctx context.Context, entry TimeEntry) error
	List(ctx context.Context, companyID string, filter TimeEntryFilter) ([]TimeEntry, int64, error)

	// GetOpenByEmployee returns the employee's open entry, if any.
	GetOpenByEmployee(ctx context.Context, employeeID string, companyID string) (*TimeEntry, error)

	// GetForPayPeriod returns entries whose clock-in date falls inside the
	// closed interval [start, end] for the given employees, ordered by
	// clock-in time.
	GetForPayPeriod(ctx context.Context, companyID string, employeeIDs []string, start, end time.Time) ([]TimeEntry, error)

	// MarkStaleOpenAsException flags entries open longer than the limit.
	// Returns the number of entries flagged.
	MarkStaleOpenAsException(ctx context.Context, openSince time.Time) (int64, error)
}
