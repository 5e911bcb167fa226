package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/leave"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/payroll"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/timeentry"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/user"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/database"
	"github.com/qhamayedwa/wfm-backend-go/internal/repository/postgresql"
)

// defaultLeaveHoursPerDay is used when an application does not specify
// hours per day.
const defaultLeaveHoursPerDay = 8.0

// leaveDayStartHour anchors generated absence entries inside the working
// day so they attribute to the right date.
const leaveDayStartHour = 9

type LeaveServiceImpl struct {
	db            *database.DB
	leaveRepo     leave.LeaveRepository
	timeEntryRepo timeentry.TimeEntryRepository
	payrollRepo   payroll.PayrollRepository
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRepository,
	timeEntryRepo timeentry.TimeEntryRepository,
	payrollRepo payroll.PayrollRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:            db,
		leaveRepo:     leaveRepo,
		timeEntryRepo: timeEntryRepo,
		payrollRepo:   payrollRepo,
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

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ApplicationResponse{}, err
	}

	companyID, _, employeeID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}
	if employeeID == "" {
		return leave.ApplicationResponse{}, leave.ErrApplicationNotFound
	}

	payCode, err := s.payrollRepo.GetPayCodeByID(ctx, req.PayCodeID, companyID)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}
	if !payCode.IsAbsenceCode || !payCode.IsActive {
		return leave.ApplicationResponse{}, leave.ErrPayCodeNotAbsence
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	overlap, err := s.leaveRepo.HasOverlap(ctx, employeeID, start, end, "")
	if err != nil {
		return leave.ApplicationResponse{}, err
	}
	if overlap {
		return leave.ApplicationResponse{}, leave.ErrOverlappingLeave
	}

	hoursPerDay := req.HoursPerDay
	if hoursPerDay == 0 {
		hoursPerDay = defaultLeaveHoursPerDay
	}

	created, err := s.leaveRepo.Create(ctx, leave.Application{
		EmployeeID:  employeeID,
		CompanyID:   companyID,
		PayCodeID:   req.PayCodeID,
		StartDate:   start,
		EndDate:     end,
		HoursPerDay: hoursPerDay,
		Reason:      req.Reason,
		Status:      leave.StatusPending,
	})
	if err != nil {
		return leave.ApplicationResponse{}, err
	}
	created.PayCode = &payCode.Code
	return toApplicationResponse(created), nil
}

// GetApplication implements leave.LeaveService.
func (s *LeaveServiceImpl) GetApplication(ctx context.Context, id string) (leave.ApplicationResponse, error) {
	companyID, _, employeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}

	app, err := s.leaveRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}

	// Employees only see their own applications.
	if role == user.RoleEmployee && app.EmployeeID != employeeID {
		return leave.ApplicationResponse{}, leave.ErrNotApplicationOwner
	}
	return toApplicationResponse(app), nil
}

// ListApplications implements leave.LeaveService.
func (s *LeaveServiceImpl) ListApplications(ctx context.Context, filter leave.ApplicationFilter) (leave.ListApplicationResponse, error) {
	companyID, _, employeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.ListApplicationResponse{}, err
	}

	if role == user.RoleEmployee {
		filter.EmployeeID = &employeeID
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	apps, total, err := s.leaveRepo.List(ctx, companyID, filter)
	if err != nil {
		return leave.ListApplicationResponse{}, err
	}

	data := make([]leave.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		data = append(data, toApplicationResponse(app))
	}

	return leave.ListApplicationResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Approve implements leave.LeaveService. Approval and the absence time
// entries it creates commit atomically.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ApproveRequest) error {
	companyID, userID, employeeID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	app, err := s.leaveRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return err
	}
	if app.Status != leave.StatusPending {
		return leave.ErrApplicationNotPending
	}
	if employeeID != "" && app.EmployeeID == employeeID {
		return leave.ErrCannotApproveOwnLeave
	}

	now := time.Now().UTC()
	app.Status = leave.StatusApproved
	app.ApprovedBy = &userID
	app.ApprovedAt = &now

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.leaveRepo.UpdateStatus(txCtx, app); err != nil {
			return err
		}

		for day := app.StartDate; !day.After(app.EndDate); day = day.AddDate(0, 0, 1) {
			clockIn := time.Date(day.Year(), day.Month(), day.Day(), leaveDayStartHour, 0, 0, 0, time.UTC)
			clockOut := clockIn.Add(time.Duration(app.HoursPerDay * float64(time.Hour)))

			_, err := s.timeEntryRepo.Create(txCtx, timeentry.TimeEntry{
				EmployeeID:   app.EmployeeID,
				CompanyID:    companyID,
				ClockInTime:  clockIn,
				ClockOutTime: &clockOut,
				Status:       timeentry.StatusApproved,
				PayCodeID:    &app.PayCodeID,
				ApprovedBy:   &userID,
				ApprovedAt:   &now,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, userID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	app, err := s.leaveRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return err
	}
	if app.Status != leave.StatusPending {
		return leave.ErrApplicationNotPending
	}

	now := time.Now().UTC()
	app.Status = leave.StatusRejected
	app.ApprovedBy = &userID
	app.ApprovedAt = &now
	app.RejectionReason = &req.Reason

	return s.leaveRepo.UpdateStatus(ctx, app)
}

// Cancel implements leave.LeaveService.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, id string) error {
	companyID, _, employeeID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	app, err := s.leaveRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if app.EmployeeID != employeeID {
		return leave.ErrNotApplicationOwner
	}
	if app.Status != leave.StatusPending {
		return leave.ErrApplicationNotPending
	}

	app.Status = leave.StatusCancelled
	return s.leaveRepo.UpdateStatus(ctx, app)
}

// ListBalances implements leave.LeaveService.
func (s *LeaveServiceImpl) ListBalances(ctx context.Context, employeeID string, year int) (leave.BalanceResponse, error) {
	companyID, _, ownEmployeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	// Employees only see their own balances.
	if role == user.RoleEmployee || employeeID == "" {
		employeeID = ownEmployeeID
	}
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	rows, err := s.leaveRepo.GetBalances(ctx, companyID, employeeID, year)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	return leave.BalanceResponse{
		EmployeeID: employeeID,
		Year:       year,
		Rows:       rows,
	}, nil
}

func toApplicationResponse(app leave.Application) leave.ApplicationResponse {
	resp := leave.ApplicationResponse{
		ID:              app.ID,
		EmployeeID:      app.EmployeeID,
		EmployeeName:    app.EmployeeName,
		PayCodeID:       app.PayCodeID,
		PayCode:         app.PayCode,
		StartDate:       app.StartDate.Format("2006-01-02"),
		EndDate:         app.EndDate.Format("2006-01-02"),
		HoursPerDay:     app.HoursPerDay,
		TotalHours:      app.TotalHours(),
		Reason:          app.Reason,
		Status:          app.Status,
		ApprovedBy:      app.ApprovedBy,
		RejectionReason: app.RejectionReason,
		CreatedAt:       app.CreatedAt.Format(time.RFC3339),
	}
	if app.ApprovedAt != nil {
		at := app.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &at
	}
	return resp
}
