package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, companyID string, employeeCode string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, companyID string, req UpdateEmployeeRequest) error
	List(ctx context.Context, companyID string, filter EmployeeFilter) ([]Employee, int64, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	// GetActiveByIDs resolves an explicit subset; ids not found are simply
	// absent from the result (callers decide how to report them).
	GetActiveByIDs(ctx context.Context, companyID string, ids []string) ([]Employee, error)
	SoftDelete(ctx context.Context, id string, companyID string) error
}
