package schedule

import (
	"time"

	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	EmployeeID string  `json:"employee_id"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Position   *string `json:"position,omitempty"`
	Notes      *string `json:"notes,omitempty"`

	// Parsed during validation
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	start, okStart := validator.IsValidDateTime(r.StartTime)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be RFC3339"})
	}
	end, okEnd := validator.IsValidDateTime(r.EndTime)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be RFC3339"})
	}
	if okStart && okEnd {
		if !end.After(start) {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be after start_time"})
		} else if end.Sub(start).Hours() > 24 {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "shift must not exceed 24 hours"})
		}
		r.Start, r.End = start, end
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID        string
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Position  *string `json:"position,omitempty"`
	Notes     *string `json:"notes,omitempty"`

	Start *time.Time `json:"-"`
	End   *time.Time `json:"-"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartTime != nil {
		start, ok := validator.IsValidDateTime(*r.StartTime)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be RFC3339"})
		} else {
			r.Start = &start
		}
	}
	if r.EndTime != nil {
		end, ok := validator.IsValidDateTime(*r.EndTime)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be RFC3339"})
		} else {
			r.End = &end
		}
	}
	if r.Start != nil && r.End != nil && !r.End.After(*r.Start) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be after start_time"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Hours        float64 `json:"hours"`
	Position     *string `json:"position,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	IsPublished  bool    `json:"is_published"`
}

type ShiftFilter struct {
	EmployeeID    *string
	From          *time.Time
	To            *time.Time
	PublishedOnly bool
	Page          int
	Limit         int
}

type ListShiftResponse struct {
	Data       []ShiftResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}
