package leave

import "context"

type LeaveService interface {
	// Apply files an application for the authenticated employee.
	Apply(ctx context.Context, req ApplyRequest) (ApplicationResponse, error)
	GetApplication(ctx context.Context, id string) (ApplicationResponse, error)
	ListApplications(ctx context.Context, filter ApplicationFilter) (ListApplicationResponse, error)
	// Approve transitions a pending application to approved and creates one
	// absence time entry per day in the range, linked to the pay code.
	Approve(ctx context.Context, req ApproveRequest) error
	Reject(ctx context.Context, req RejectRequest) error
	// Cancel lets the owner withdraw a pending application.
	Cancel(ctx context.Context, id string) error
	// ListBalances reports hours taken per absence pay code for one year.
	ListBalances(ctx context.Context, employeeID string, year int) (BalanceResponse, error)
}
