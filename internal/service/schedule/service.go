package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/employee"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/schedule"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/user"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/database"
)

type ScheduleServiceImpl struct {
	db           *database.DB
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository
}

func NewScheduleService(
	db *database.DB,
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		db:           db,
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}

// Helper to get company_id, user_id, employee_id and role from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID, employeeID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)
	employeeID, _ = claims["employee_id"].(string)
	roleStr, _ := claims["role"].(string)

	return companyID, userID, employeeID, user.Role(roleStr), nil
}

// CreateShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateShift(ctx context.Context, req schedule.CreateShiftRequest) (schedule.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftResponse{}, err
	}

	companyID, userID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return schedule.ShiftResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return schedule.ShiftResponse{}, schedule.ErrEmployeeNotFound
	}
	if !emp.IsActive() {
		return schedule.ShiftResponse{}, schedule.ErrEmployeeNotFound
	}

	conflicts, err := s.scheduleRepo.GetOverlapping(ctx, req.EmployeeID, req.Start, req.End, "")
	if err != nil {
		return schedule.ShiftResponse{}, err
	}
	if len(conflicts) > 0 {
		return schedule.ShiftResponse{}, schedule.ErrShiftConflict
	}

	created, err := s.scheduleRepo.Create(ctx, schedule.Shift{
		EmployeeID:  req.EmployeeID,
		CompanyID:   companyID,
		StartTime:   req.Start,
		EndTime:     req.End,
		Position:    req.Position,
		Notes:       req.Notes,
		CreatedByID: userID,
	})
	if err != nil {
		return schedule.ShiftResponse{}, err
	}
	created.EmployeeName = &emp.FullName
	return toShiftResponse(created), nil
}

// GetShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetShift(ctx context.Context, id string) (schedule.ShiftResponse, error) {
	companyID, _, employeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return schedule.ShiftResponse{}, err
	}

	shift, err := s.scheduleRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return schedule.ShiftResponse{}, err
	}

	// Employees only see their own published shifts.
	if role == user.RoleEmployee {
		if shift.EmployeeID != employeeID || !shift.IsPublished() {
			return schedule.ShiftResponse{}, schedule.ErrShiftNotFound
		}
	}
	return toShiftResponse(shift), nil
}

// ListShifts implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListShifts(ctx context.Context, filter schedule.ShiftFilter) (schedule.ListShiftResponse, error) {
	companyID, _, employeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return schedule.ListShiftResponse{}, err
	}

	if role == user.RoleEmployee {
		filter.EmployeeID = &employeeID
		filter.PublishedOnly = true
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	shifts, total, err := s.scheduleRepo.List(ctx, companyID, filter)
	if err != nil {
		return schedule.ListShiftResponse{}, err
	}

	data := make([]schedule.ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		data = append(data, toShiftResponse(shift))
	}

	return schedule.ListShiftResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// UpdateShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) UpdateShift(ctx context.Context, req schedule.UpdateShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, _, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	shift, err := s.scheduleRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return err
	}

	if req.Start != nil {
		shift.StartTime = *req.Start
	}
	if req.End != nil {
		shift.EndTime = *req.End
	}
	if req.Position != nil {
		shift.Position = req.Position
	}
	if req.Notes != nil {
		shift.Notes = req.Notes
	}
	if !shift.EndTime.After(shift.StartTime) {
		return schedule.ErrEndBeforeStart
	}

	conflicts, err := s.scheduleRepo.GetOverlapping(ctx, shift.EmployeeID, shift.StartTime, shift.EndTime, shift.ID)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return schedule.ErrShiftConflict
	}

	return s.scheduleRepo.Update(ctx, shift)
}

// PublishShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) PublishShift(ctx context.Context, id string) error {
	companyID, _, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return s.scheduleRepo.SetPublished(ctx, id, companyID, &now)
}

// UnpublishShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) UnpublishShift(ctx context.Context, id string) error {
	companyID, _, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.scheduleRepo.SetPublished(ctx, id, companyID, nil)
}

// DeleteShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DeleteShift(ctx context.Context, id string) error {
	companyID, _, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	shift, err := s.scheduleRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if shift.IsPublished() {
		return schedule.ErrShiftPublished
	}

	return s.scheduleRepo.Delete(ctx, id, companyID)
}

func toShiftResponse(shift schedule.Shift) schedule.ShiftResponse {
	return schedule.ShiftResponse{
		ID:           shift.ID,
		EmployeeID:   shift.EmployeeID,
		EmployeeName: shift.EmployeeName,
		StartTime:    shift.StartTime.Format(time.RFC3339),
		EndTime:      shift.EndTime.Format(time.RFC3339),
		Hours:        shift.Hours(),
		Position:     shift.Position,
		Notes:        shift.Notes,
		IsPublished:  shift.IsPublished(),
	}
}
