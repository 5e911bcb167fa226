package postgresql

import (
	"context"
	"time"

	"github.com/qhamayedwa/wfm-backend-go/internal/domain/report"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// GetAttendanceRows implements report.ReportRepository.
func (r *reportRepositoryImpl) GetAttendanceRows(ctx context.Context, companyID string, start, end time.Time, departmentID *string) ([]report.AttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	// Worked hours mirror the entry rule: span minus break, open entries
	// count zero. Leave entries aggregate separately via pay_code_id.
	query := `
		SELECT e.id, e.full_name, e.employee_code, d.name,
			COUNT(DISTINCT DATE(t.clock_in_time)) FILTER (WHERE t.pay_code_id IS NULL AND t.clock_out_time IS NOT NULL),
			COALESCE(SUM(
				GREATEST(EXTRACT(EPOCH FROM (t.clock_out_time - t.clock_in_time)) / 3600.0 - t.break_minutes / 60.0, 0)
			) FILTER (WHERE t.pay_code_id IS NULL AND t.clock_out_time IS NOT NULL AND t.status IN ('pending', 'approved')), 0),
			COALESCE(SUM(
				GREATEST(EXTRACT(EPOCH FROM (t.clock_out_time - t.clock_in_time)) / 3600.0 - t.break_minutes / 60.0, 0)
			) FILTER (WHERE t.pay_code_id IS NOT NULL AND t.clock_out_time IS NOT NULL AND t.status IN ('pending', 'approved')), 0),
			COUNT(*) FILTER (WHERE t.status = 'exception')
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN time_entries t ON t.employee_id = e.id
			AND t.clock_in_time >= $2 AND t.clock_in_time < $3
		WHERE e.company_id = $1 AND e.deleted_at IS NULL
			AND ($4::uuid IS NULL OR e.department_id = $4)
		GROUP BY e.id, e.full_name, e.employee_code, d.name
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, companyID, start, end.AddDate(0, 0, 1), departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []report.AttendanceRow
	for rows.Next() {
		var row report.AttendanceRow
		if err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.EmployeeCode, &row.DepartmentName,
			&row.DaysWorked, &row.WorkedHours, &row.LeaveHours, &row.ExceptionCount,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetPayrollRows implements report.ReportRepository.
func (r *reportRepositoryImpl) GetPayrollRows(ctx context.Context, companyID string, start, end time.Time) ([]report.PayrollRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.employee_id, e.full_name, e.employee_code,
			SUM(c.total_hours), SUM(c.regular_hours), SUM(c.overtime_hours), SUM(c.double_time_hours),
			SUM(c.total_allowances), SUM(c.shift_differentials)
		FROM pay_calculations c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.company_id = $1 AND c.pay_period_start >= $2 AND c.pay_period_end <= $3
		GROUP BY c.employee_id, e.full_name, e.employee_code
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []report.PayrollRow
	for rows.Next() {
		var row report.PayrollRow
		if err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.EmployeeCode,
			&row.TotalHours, &row.RegularHours, &row.OvertimeHours, &row.DoubleTimeHours,
			&row.TotalAllowances, &row.ShiftDifferentials,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
