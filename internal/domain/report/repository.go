package report

import (
	"context"
	"time"
)

type ReportRepository interface {
	// GetAttendanceRows aggregates approved and pending time entries per
	// employee over [start, end]. departmentID narrows the result when
	// non-nil.
	GetAttendanceRows(ctx context.Context, companyID string, start, end time.Time, departmentID *string) ([]AttendanceRow, error)
	// GetPayrollRows aggregates saved pay calculations whose periods fall
	// inside [start, end].
	GetPayrollRows(ctx context.Context, companyID string, start, end time.Time) ([]PayrollRow, error)
}
