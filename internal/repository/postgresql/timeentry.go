package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/timeentry"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/database"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

const timeEntryColumns = `t.id, t.employee_id, t.company_id, t.clock_in_time, t.clock_out_time,
	t.break_minutes, t.clock_in_latitude, t.clock_in_longitude, t.clock_out_latitude, t.clock_out_longitude,
	t.status, t.pay_code_id, t.notes, t.approved_by, t.approved_at, t.rejection_reason,
	t.created_at, t.updated_at`

func scanTimeEntry(row pgx.Row) (timeentry.TimeEntry, error) {
	var t timeentry.TimeEntry
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.CompanyID, &t.ClockInTime, &t.ClockOutTime,
		&t.BreakMinutes, &t.ClockInLatitude, &t.ClockInLongitude, &t.ClockOutLatitude, &t.ClockOutLongitude,
		&t.Status, &t.PayCodeID, &t.Notes, &t.ApprovedBy, &t.ApprovedAt, &t.RejectionReason,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Create implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (
			employee_id, company_id, clock_in_time, clock_out_time, break_minutes,
			clock_in_latitude, clock_in_longitude, clock_out_latitude, clock_out_longitude,
			status, pay_code_id, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, employee_id, company_id, clock_in_time, clock_out_time,
			break_minutes, clock_in_latitude, clock_in_longitude, clock_out_latitude, clock_out_longitude,
			status, pay_code_id, notes, approved_by, approved_at, rejection_reason,
			created_at, updated_at
	`

	created, err := scanTimeEntry(q.QueryRow(ctx, query,
		entry.EmployeeID, entry.CompanyID, entry.ClockInTime, entry.ClockOutTime, entry.BreakMinutes,
		entry.ClockInLatitude, entry.ClockInLongitude, entry.ClockOutLatitude, entry.ClockOutLongitude,
		entry.Status, entry.PayCodeID, entry.Notes,
	))
	if err != nil {
		return timeentry.TimeEntry{}, err
	}
	return created, nil
}

// GetByID implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `, e.full_name, pc.code
		FROM time_entries t
		JOIN employees e ON e.id = t.employee_id
		LEFT JOIN pay_codes pc ON pc.id = t.pay_code_id
		WHERE t.id = $1 AND t.company_id = $2
	`

	var t timeentry.TimeEntry
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&t.ID, &t.EmployeeID, &t.CompanyID, &t.ClockInTime, &t.ClockOutTime,
		&t.BreakMinutes, &t.ClockInLatitude, &t.ClockInLongitude, &t.ClockOutLatitude, &t.ClockOutLongitude,
		&t.Status, &t.PayCodeID, &t.Notes, &t.ApprovedBy, &t.ApprovedAt, &t.RejectionReason,
		&t.CreatedAt, &t.UpdatedAt, &t.EmployeeName, &t.PayCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, err
	}
	return t, nil
}

// Update implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Update(ctx context.Context, entry timeentry.TimeEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET clock_in_time = $1, clock_out_time = $2, break_minutes = $3,
			clock_out_latitude = $4, clock_out_longitude = $5,
			status = $6, notes = $7, approved_by = $8, approved_at = $9, rejection_reason = $10,
			updated_at = NOW()
		WHERE id = $11 AND company_id = $12
	`

	tag, err := q.Exec(ctx, query,
		entry.ClockInTime, entry.ClockOutTime, entry.BreakMinutes,
		entry.ClockOutLatitude, entry.ClockOutLongitude,
		entry.Status, entry.Notes, entry.ApprovedBy, entry.ApprovedAt, entry.RejectionReason,
		entry.ID, entry.CompanyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrTimeEntryNotFound
	}
	return nil
}

// List implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) List(ctx context.Context, companyID string, filter timeentry.TimeEntryFilter) ([]timeentry.TimeEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"t.company_id = $1"}
	args := []interface{}{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("t.employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("t.clock_in_time >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("t.clock_in_time < $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM time_entries t WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT `+timeEntryColumns+`, e.full_name, pc.code
		FROM time_entries t
		JOIN employees e ON e.id = t.employee_id
		LEFT JOIN pay_codes pc ON pc.id = t.pay_code_id
		WHERE `+where+`
		ORDER BY t.clock_in_time DESC
		LIMIT $%d OFFSET $%d
	`, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		var t timeentry.TimeEntry
		if err := rows.Scan(
			&t.ID, &t.EmployeeID, &t.CompanyID, &t.ClockInTime, &t.ClockOutTime,
			&t.BreakMinutes, &t.ClockInLatitude, &t.ClockInLongitude, &t.ClockOutLatitude, &t.ClockOutLongitude,
			&t.Status, &t.PayCodeID, &t.Notes, &t.ApprovedBy, &t.ApprovedAt, &t.RejectionReason,
			&t.CreatedAt, &t.UpdatedAt, &t.EmployeeName, &t.PayCode,
		); err != nil {
			return nil, 0, err
		}
		entries = append(entries, t)
	}
	return entries, total, rows.Err()
}

// GetOpenByEmployee implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetOpenByEmployee(ctx context.Context, employeeID string, companyID string) (*timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		WHERE t.employee_id = $1 AND t.company_id = $2 AND t.clock_out_time IS NULL AND t.status = $3
		ORDER BY t.clock_in_time DESC
		LIMIT 1
	`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, employeeID, companyID, timeentry.StatusActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// GetForPayPeriod implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetForPayPeriod(ctx context.Context, companyID string, employeeIDs []string, start, end time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	// The period is a closed date interval; entries belong to their
	// clock-in date.
	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		WHERE t.company_id = $1 AND t.employee_id = ANY($2)
			AND t.clock_in_time >= $3 AND t.clock_in_time < $4
		ORDER BY t.clock_in_time
	`

	rows, err := q.Query(ctx, query, companyID, employeeIDs, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		t, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, t)
	}
	return entries, rows.Err()
}

// MarkStaleOpenAsException implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) MarkStaleOpenAsException(ctx context.Context, openSince time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET status = $1, updated_at = NOW()
		WHERE clock_out_time IS NULL AND status = $2 AND clock_in_time < $3
	`

	tag, err := q.Exec(ctx, query, timeentry.StatusException, timeentry.StatusActive, openSince)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
