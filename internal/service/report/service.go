package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/report"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/database"
)

type ReportServiceImpl struct {
	db         *database.DB
	reportRepo report.ReportRepository
}

func NewReportService(db *database.DB, reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{db: db, reportRepo: reportRepo}
}

// Helper to get company_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// AttendanceSummary implements report.ReportService.
func (s *ReportServiceImpl) AttendanceSummary(ctx context.Context, req report.PeriodRequest) (report.AttendanceSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceSummaryResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return report.AttendanceSummaryResponse{}, err
	}

	rows, err := s.reportRepo.GetAttendanceRows(ctx, companyID, req.Start, req.End, req.DepartmentID)
	if err != nil {
		return report.AttendanceSummaryResponse{}, err
	}

	return report.AttendanceSummaryResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Rows:      rows,
	}, nil
}

// PayrollSummary implements report.ReportService.
func (s *ReportServiceImpl) PayrollSummary(ctx context.Context, req report.PeriodRequest) (report.PayrollSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.PayrollSummaryResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return report.PayrollSummaryResponse{}, err
	}

	rows, err := s.reportRepo.GetPayrollRows(ctx, companyID, req.Start, req.End)
	if err != nil {
		return report.PayrollSummaryResponse{}, err
	}

	return report.PayrollSummaryResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Rows:      rows,
	}, nil
}

// ExportAttendanceCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendanceCSV(ctx context.Context, req report.PeriodRequest, w io.Writer) error {
	summary, err := s.AttendanceSummary(ctx, req)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{
		"employee_code", "employee_name", "department", "days_worked", "worked_hours", "leave_hours", "exceptions",
	}); err != nil {
		return err
	}

	for _, row := range summary.Rows {
		department := ""
		if row.DepartmentName != nil {
			department = *row.DepartmentName
		}
		if err := writer.Write([]string{
			row.EmployeeCode,
			row.EmployeeName,
			department,
			strconv.Itoa(row.DaysWorked),
			strconv.FormatFloat(row.WorkedHours, 'f', 2, 64),
			strconv.FormatFloat(row.LeaveHours, 'f', 2, 64),
			strconv.Itoa(row.ExceptionCount),
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportPayrollCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportPayrollCSV(ctx context.Context, req report.PeriodRequest, w io.Writer) error {
	summary, err := s.PayrollSummary(ctx, req)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{
		"employee_code", "employee_name", "total_hours", "regular_hours", "overtime_hours", "double_time_hours",
		"total_allowances", "shift_differentials",
	}); err != nil {
		return err
	}

	for _, row := range summary.Rows {
		if err := writer.Write([]string{
			row.EmployeeCode,
			row.EmployeeName,
			strconv.FormatFloat(row.TotalHours, 'f', 2, 64),
			strconv.FormatFloat(row.RegularHours, 'f', 2, 64),
			strconv.FormatFloat(row.OvertimeHours, 'f', 2, 64),
			strconv.FormatFloat(row.DoubleTimeHours, 'f', 2, 64),
			row.TotalAllowances.StringFixed(2),
			row.ShiftDifferentials.StringFixed(2),
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
