package timeentry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/qhamayedwa/wfm-backend-go/internal/config"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/timeentry"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/database"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/validator"
)

type TimeEntryServiceImpl struct {
	db            *database.DB
	timeEntryRepo timeentry.TimeEntryRepository
	cfg           config.TimeEntryConfig
}

func NewTimeEntryService(
	db *database.DB,
	timeEntryRepo timeentry.TimeEntryRepository,
	cfg config.TimeEntryConfig,
) timeentry.TimeEntryService {
	return &TimeEntryServiceImpl{
		db:            db,
		timeEntryRepo: timeEntryRepo,
		cfg:           cfg,
	}
}

// Helper to get company_id, user_id and employee_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID, employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)
	employeeID, _ = claims["employee_id"].(string)

	return companyID, userID, employeeID, nil
}

// ClockIn implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ClockIn(ctx context.Context, req timeentry.ClockInRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	companyID, _, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	if req.EmployeeID != "" {
		employeeID = req.EmployeeID
	}
	if employeeID == "" {
		return timeentry.TimeEntryResponse{}, timeentry.ErrEmployeeNotFound
	}

	open, err := s.timeEntryRepo.GetOpenByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	if open != nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrAlreadyClockedIn
	}

	created, err := s.timeEntryRepo.Create(ctx, timeentry.TimeEntry{
		EmployeeID:       employeeID,
		CompanyID:        companyID,
		ClockInTime:      time.Now().UTC(),
		ClockInLatitude:  req.Latitude,
		ClockInLongitude: req.Longitude,
		Status:           timeentry.StatusActive,
		Notes:            req.Notes,
	})
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return toTimeEntryResponse(created), nil
}

// ClockOut implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ClockOut(ctx context.Context, req timeentry.ClockOutRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	companyID, _, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	if req.EmployeeID != "" {
		employeeID = req.EmployeeID
	}

	open, err := s.timeEntryRepo.GetOpenByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	if open == nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrNoOpenEntry
	}

	now := time.Now().UTC()
	if !now.After(open.ClockInTime) {
		return timeentry.TimeEntryResponse{}, timeentry.ErrClockOutBeforeIn
	}
	if float64(req.BreakMinutes) > now.Sub(open.ClockInTime).Minutes() {
		return timeentry.TimeEntryResponse{}, timeentry.ErrBreakExceedsSpan
	}

	open.ClockOutTime = &now
	open.BreakMinutes = req.BreakMinutes
	open.ClockOutLatitude = req.Latitude
	open.ClockOutLongitude = req.Longitude
	open.Status = timeentry.StatusPending

	if err := s.timeEntryRepo.Update(ctx, *open); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return toTimeEntryResponse(*open), nil
}

// GetMyEntries implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) GetMyEntries(ctx context.Context, filter timeentry.TimeEntryFilter) (timeentry.ListTimeEntryResponse, error) {
	_, _, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return timeentry.ListTimeEntryResponse{}, err
	}
	if employeeID == "" {
		return timeentry.ListTimeEntryResponse{}, timeentry.ErrEmployeeNotFound
	}

	filter.EmployeeID = &employeeID
	return s.List(ctx, filter)
}

// List implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) List(ctx context.Context, filter timeentry.TimeEntryFilter) (timeentry.ListTimeEntryResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return timeentry.ListTimeEntryResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	entries, total, err := s.timeEntryRepo.List(ctx, companyID, filter)
	if err != nil {
		return timeentry.ListTimeEntryResponse{}, err
	}

	data := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		data = append(data, toTimeEntryResponse(entry))
	}

	return timeentry.ListTimeEntryResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Get implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Get(ctx context.Context, id string) (timeentry.TimeEntryResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.timeEntryRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return toTimeEntryResponse(entry), nil
}

// Correct implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Correct(ctx context.Context, req timeentry.CorrectRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.timeEntryRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if req.ClockInTime != nil {
		t, _ := validator.IsValidDateTime(*req.ClockInTime)
		entry.ClockInTime = t
	}
	if req.ClockOutTime != nil {
		t, _ := validator.IsValidDateTime(*req.ClockOutTime)
		entry.ClockOutTime = &t
	}
	if req.BreakMinutes != nil {
		entry.BreakMinutes = *req.BreakMinutes
	}
	if req.Notes != nil {
		entry.Notes = req.Notes
	}

	if entry.ClockOutTime == nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrEntryStillOpen
	}
	if !entry.ClockOutTime.After(entry.ClockInTime) {
		return timeentry.TimeEntryResponse{}, timeentry.ErrClockOutBeforeIn
	}
	if float64(entry.BreakMinutes) > entry.ClockOutTime.Sub(entry.ClockInTime).Minutes() {
		return timeentry.TimeEntryResponse{}, timeentry.ErrBreakExceedsSpan
	}

	// A corrected entry goes back through approval.
	entry.Status = timeentry.StatusPending
	entry.ApprovedBy = nil
	entry.ApprovedAt = nil
	entry.RejectionReason = nil

	if err := s.timeEntryRepo.Update(ctx, entry); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return toTimeEntryResponse(entry), nil
}

// Approve implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Approve(ctx context.Context, req timeentry.ApproveRequest) (timeentry.TimeEntryResponse, error) {
	companyID, userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.timeEntryRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	if entry.Status != timeentry.StatusPending {
		return timeentry.TimeEntryResponse{}, timeentry.ErrAlreadyProcessed
	}

	now := time.Now().UTC()
	entry.Status = timeentry.StatusApproved
	entry.ApprovedBy = &userID
	entry.ApprovedAt = &now

	if err := s.timeEntryRepo.Update(ctx, entry); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return toTimeEntryResponse(entry), nil
}

// Reject implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Reject(ctx context.Context, req timeentry.RejectRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	companyID, userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.timeEntryRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	if entry.Status != timeentry.StatusPending {
		return timeentry.TimeEntryResponse{}, timeentry.ErrAlreadyProcessed
	}

	now := time.Now().UTC()
	entry.Status = timeentry.StatusRejected
	entry.ApprovedBy = &userID
	entry.ApprovedAt = &now
	entry.RejectionReason = &req.Reason

	if err := s.timeEntryRepo.Update(ctx, entry); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return toTimeEntryResponse(entry), nil
}

// FlagStaleOpenEntries implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) FlagStaleOpenEntries(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-s.cfg.OpenEntryLimit)

	flagged, err := s.timeEntryRepo.MarkStaleOpenAsException(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if flagged > 0 {
		slog.Info("flagged stale open time entries", "count", flagged, "open_since", cutoff)
	}
	return flagged, nil
}

func toTimeEntryResponse(entry timeentry.TimeEntry) timeentry.TimeEntryResponse {
	resp := timeentry.TimeEntryResponse{
		ID:           entry.ID,
		EmployeeID:   entry.EmployeeID,
		EmployeeName: entry.EmployeeName,
		ClockInTime:  entry.ClockInTime.Format(time.RFC3339),
		BreakMinutes: entry.BreakMinutes,
		WorkedHours:  entry.WorkedHours(),
		Status:       string(entry.Status),
		PayCode:      entry.PayCode,
		Notes:        entry.Notes,
		Latitude:     entry.ClockInLatitude,
		Longitude:    entry.ClockInLongitude,
	}
	if entry.ClockOutTime != nil {
		out := entry.ClockOutTime.Format(time.RFC3339)
		resp.ClockOutTime = &out
	}
	return resp
}
