package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/schedule"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

const shiftColumns = `s.id, s.employee_id, s.company_id, s.start_time, s.end_time,
	s.position, s.notes, s.published_at, s.created_by_id, s.created_at, s.updated_at`

func scanShift(row pgx.Row) (schedule.Shift, error) {
	var s schedule.Shift
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.CompanyID, &s.StartTime, &s.EndTime,
		&s.Position, &s.Notes, &s.PublishedAt, &s.CreatedByID, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, shift schedule.Shift) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (employee_id, company_id, start_time, end_time, position, notes, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, company_id, start_time, end_time,
			position, notes, published_at, created_by_id, created_at, updated_at
	`

	created, err := scanShift(q.QueryRow(ctx, query,
		shift.EmployeeID, shift.CompanyID, shift.StartTime, shift.EndTime,
		shift.Position, shift.Notes, shift.CreatedByID,
	))
	if err != nil {
		return schedule.Shift{}, err
	}
	return created, nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `, e.full_name
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1 AND s.company_id = $2
	`

	var s schedule.Shift
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&s.ID, &s.EmployeeID, &s.CompanyID, &s.StartTime, &s.EndTime,
		&s.Position, &s.Notes, &s.PublishedAt, &s.CreatedByID, &s.CreatedAt, &s.UpdatedAt,
		&s.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Shift{}, schedule.ErrShiftNotFound
		}
		return schedule.Shift{}, err
	}
	return s, nil
}

// List implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) List(ctx context.Context, companyID string, filter schedule.ShiftFilter) ([]schedule.Shift, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"s.company_id = $1"}
	args := []interface{}{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("s.end_time > $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("s.start_time < $%d", len(args)))
	}
	if filter.PublishedOnly {
		conditions = append(conditions, "s.published_at IS NOT NULL")
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM shifts s WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT `+shiftColumns+`, e.full_name
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE `+where+`
		ORDER BY s.start_time
		LIMIT $%d OFFSET $%d
	`, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var shifts []schedule.Shift
	for rows.Next() {
		var s schedule.Shift
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.CompanyID, &s.StartTime, &s.EndTime,
			&s.Position, &s.Notes, &s.PublishedAt, &s.CreatedByID, &s.CreatedAt, &s.UpdatedAt,
			&s.EmployeeName,
		); err != nil {
			return nil, 0, err
		}
		shifts = append(shifts, s)
	}
	return shifts, total, rows.Err()
}

// GetOverlapping implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		WHERE s.employee_id = $1
			AND s.start_time < $2 AND s.end_time > $3
			AND ($4 = '' OR s.id::text <> $4)
		ORDER BY s.start_time
	`

	rows, err := q.Query(ctx, query, employeeID, end, start, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []schedule.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// Update implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Update(ctx context.Context, shift schedule.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET start_time = $1, end_time = $2, position = $3, notes = $4, updated_at = NOW()
		WHERE id = $5 AND company_id = $6
	`

	tag, err := q.Exec(ctx, query,
		shift.StartTime, shift.EndTime, shift.Position, shift.Notes, shift.ID, shift.CompanyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrShiftNotFound
	}
	return nil
}

// SetPublished implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) SetPublished(ctx context.Context, id string, companyID string, publishedAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE shifts SET published_at = $1, updated_at = NOW() WHERE id = $2 AND company_id = $3`,
		publishedAt, id, companyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrShiftNotFound
	}
	return nil
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrShiftNotFound
	}
	return nil
}
