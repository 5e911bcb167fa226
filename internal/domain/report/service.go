package report

import (
	"context"
	"io"
)

type ReportService interface {
	AttendanceSummary(ctx context.Context, req PeriodRequest) (AttendanceSummaryResponse, error)
	PayrollSummary(ctx context.Context, req PeriodRequest) (PayrollSummaryResponse, error)
	// ExportAttendanceCSV streams the attendance summary as CSV.
	ExportAttendanceCSV(ctx context.Context, req PeriodRequest, w io.Writer) error
	// ExportPayrollCSV streams the payroll summary as CSV.
	ExportPayrollCSV(ctx context.Context, req PeriodRequest, w io.Writer) error
}
