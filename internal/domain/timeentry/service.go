package timeentry

import "context"

// TimeEntryService defines business logic for time & attendance
type TimeEntryService interface {
	// ClockIn opens a new entry for the authenticated employee
	ClockIn(ctx context.Context, req ClockInRequest) (TimeEntryResponse, error)

	// ClockOut closes the employee's open entry
	ClockOut(ctx context.Context, req ClockOutRequest) (TimeEntryResponse, error)

	// GetMyEntries lists the authenticated employee's entries
	GetMyEntries(ctx context.Context, filter TimeEntryFilter) (ListTimeEntryResponse, error)

	// List lists entries company-wide with filters (manager/admin)
	List(ctx context.Context, filter TimeEntryFilter) (ListTimeEntryResponse, error)

	// Get retrieves a single entry
	Get(ctx context.Context, id string) (TimeEntryResponse, error)

	// Correct fixes a closed entry in place (manager/admin)
	Correct(ctx context.Context, req CorrectRequest) (TimeEntryResponse, error)

	// Approve marks a pending entry approved
	Approve(ctx context.Context, req ApproveRequest) (TimeEntryResponse, error)

	// Reject marks a pending entry rejected with a reason
	Reject(ctx context.Context, req RejectRequest) (TimeEntryResponse, error)

	// FlagStaleOpenEntries is run by the cron sweep
	FlagStaleOpenEntries(ctx context.Context) (int64, error)
}
