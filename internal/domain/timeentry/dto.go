package timeentry

import (
	"time"

	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID string   `json:"-"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	EmployeeID   string   `json:"-"`
	BreakMinutes int      `json:"break_minutes"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_minutes", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CorrectRequest lets a manager fix a closed entry. Entries are corrected
// in place, never deleted, so the audit trail survives.
type CorrectRequest struct {
	ID           string
	ClockInTime  *string `json:"clock_in_time,omitempty"`
	ClockOutTime *string `json:"clock_out_time,omitempty"`
	BreakMinutes *int    `json:"break_minutes,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *CorrectRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ClockInTime != nil {
		if _, ok := validator.IsValidDateTime(*r.ClockInTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_in_time", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.ClockOutTime != nil {
		if _, ok := validator.IsValidDateTime(*r.ClockOutTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_out_time", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_minutes", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveRequest struct {
	ID         string
	ApprovedBy string
}

type RejectRequest struct {
	ID         string
	ApprovedBy string
	Reason     string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeEntryFilter struct {
	EmployeeID *string
	Status     *string
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	Limit      int
}

type TimeEntryResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	ClockInTime  string   `json:"clock_in_time"`
	ClockOutTime *string  `json:"clock_out_time,omitempty"`
	BreakMinutes int      `json:"break_minutes"`
	WorkedHours  float64  `json:"worked_hours"`
	Status       string   `json:"status"`
	PayCode      *string  `json:"pay_code,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	Latitude     *float64 `json:"clock_in_latitude,omitempty"`
	Longitude    *float64 `json:"clock_in_longitude,omitempty"`
}

type ListTimeEntryResponse struct {
	Data       []TimeEntryResponse `json:"data"`
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
}
