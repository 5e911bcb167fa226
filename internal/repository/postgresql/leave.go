package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/leave"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `l.id, l.employee_id, l.company_id, l.pay_code_id, l.start_date, l.end_date,
	l.hours_per_day, l.reason, l.status, l.approved_by, l.approved_at, l.rejection_reason,
	l.created_at, l.updated_at`

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, app leave.Application) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_applications (employee_id, company_id, pay_code_id, start_date, end_date, hours_per_day, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, company_id, pay_code_id, start_date, end_date,
			hours_per_day, reason, status, approved_by, approved_at, rejection_reason,
			created_at, updated_at
	`

	var created leave.Application
	err := q.QueryRow(ctx, query,
		app.EmployeeID, app.CompanyID, app.PayCodeID, app.StartDate, app.EndDate,
		app.HoursPerDay, app.Reason, app.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.CompanyID, &created.PayCodeID,
		&created.StartDate, &created.EndDate, &created.HoursPerDay, &created.Reason,
		&created.Status, &created.ApprovedBy, &created.ApprovedAt, &created.RejectionReason,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return leave.Application{}, err
	}
	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.full_name, pc.code
		FROM leave_applications l
		JOIN employees e ON e.id = l.employee_id
		JOIN pay_codes pc ON pc.id = l.pay_code_id
		WHERE l.id = $1 AND l.company_id = $2
	`

	var app leave.Application
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&app.ID, &app.EmployeeID, &app.CompanyID, &app.PayCodeID,
		&app.StartDate, &app.EndDate, &app.HoursPerDay, &app.Reason,
		&app.Status, &app.ApprovedBy, &app.ApprovedAt, &app.RejectionReason,
		&app.CreatedAt, &app.UpdatedAt, &app.EmployeeName, &app.PayCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Application{}, leave.ErrApplicationNotFound
		}
		return leave.Application{}, err
	}
	return app, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, companyID string, filter leave.ApplicationFilter) ([]leave.Application, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"l.company_id = $1"}
	args := []interface{}{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("l.employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_applications l WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT `+leaveColumns+`, e.full_name, pc.code
		FROM leave_applications l
		JOIN employees e ON e.id = l.employee_id
		JOIN pay_codes pc ON pc.id = l.pay_code_id
		WHERE `+where+`
		ORDER BY l.created_at DESC
		LIMIT $%d OFFSET $%d
	`, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var apps []leave.Application
	for rows.Next() {
		var app leave.Application
		if err := rows.Scan(
			&app.ID, &app.EmployeeID, &app.CompanyID, &app.PayCodeID,
			&app.StartDate, &app.EndDate, &app.HoursPerDay, &app.Reason,
			&app.Status, &app.ApprovedBy, &app.ApprovedAt, &app.RejectionReason,
			&app.CreatedAt, &app.UpdatedAt, &app.EmployeeName, &app.PayCode,
		); err != nil {
			return nil, 0, err
		}
		apps = append(apps, app)
	}
	return apps, total, rows.Err()
}

// HasOverlap implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) HasOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM leave_applications
			WHERE employee_id = $1
				AND status IN ($2, $3)
				AND start_date <= $4 AND end_date >= $5
				AND ($6 = '' OR id::text <> $6)
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query,
		employeeID, leave.StatusPending, leave.StatusApproved, end, start, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// GetBalances implements leave.LeaveRepository. Day counts are clipped to
// the calendar year so ranges spanning year boundaries split correctly.
func (r *leaveRepositoryImpl) GetBalances(ctx context.Context, companyID, employeeID string, year int) ([]leave.BalanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			pc.id,
			pc.code,
			pc.description,
			COALESCE(SUM(
				CASE WHEN l.status = $4
					THEN (LEAST(l.end_date, $6::date) - GREATEST(l.start_date, $5::date) + 1) * l.hours_per_day
					ELSE 0 END
			), 0),
			COALESCE(SUM(
				CASE WHEN l.status = $3
					THEN (LEAST(l.end_date, $6::date) - GREATEST(l.start_date, $5::date) + 1) * l.hours_per_day
					ELSE 0 END
			), 0)
		FROM leave_applications l
		JOIN pay_codes pc ON pc.id = l.pay_code_id
		WHERE l.company_id = $1
			AND l.employee_id = $2
			AND l.status IN ($3, $4)
			AND l.start_date <= $6 AND l.end_date >= $5
		GROUP BY pc.id, pc.code, pc.description
		ORDER BY pc.code
	`

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	rows, err := q.Query(ctx, query,
		companyID, employeeID, leave.StatusPending, leave.StatusApproved, yearStart, yearEnd,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []leave.BalanceRow
	for rows.Next() {
		var row leave.BalanceRow
		if err := rows.Scan(
			&row.PayCodeID, &row.PayCode, &row.Description, &row.ApprovedHours, &row.PendingHours,
		); err != nil {
			return nil, err
		}
		balances = append(balances, row)
	}
	return balances, rows.Err()
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, app leave.Application) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_applications
		SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $5 AND company_id = $6
	`

	tag, err := q.Exec(ctx, query,
		app.Status, app.ApprovedBy, app.ApprovedAt, app.RejectionReason, app.ID, app.CompanyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrApplicationNotFound
	}
	return nil
}
