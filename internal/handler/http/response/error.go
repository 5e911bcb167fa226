package response

import (
	"errors"
	"net/http"

	"github.com/qhamayedwa/wfm-backend-go/internal/domain/auth"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/employee"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/leave"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/organization"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/payroll"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/schedule"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/timeentry"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/user"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		BadRequest(w, "OAuth state mismatch", nil)
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Organization domain errors
	case errors.Is(err, organization.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, organization.ErrRegionNotFound):
		NotFound(w, "Region not found")
	case errors.Is(err, organization.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, organization.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, organization.ErrNameExists):
		Conflict(w, "Name already exists at this level")
	case errors.Is(err, organization.ErrHasChildren):
		Conflict(w, "Cannot delete: child records exist")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeentry.ErrAlreadyClockedIn):
		Conflict(w, "An open time entry already exists")
	case errors.Is(err, timeentry.ErrNoOpenEntry):
		Conflict(w, "No open time entry to clock out")
	case errors.Is(err, timeentry.ErrClockOutBeforeIn),
		errors.Is(err, timeentry.ErrBreakExceedsSpan),
		errors.Is(err, timeentry.ErrEntryStillOpen):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, timeentry.ErrAlreadyProcessed):
		Conflict(w, "Time entry already approved or rejected")
	case errors.Is(err, timeentry.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayCodeNotFound):
		NotFound(w, "Pay code not found")
	case errors.Is(err, payroll.ErrPayCodeExists):
		Conflict(w, "Pay code already exists")
	case errors.Is(err, payroll.ErrPayCodeInUse):
		Conflict(w, "Pay code is in use, deactivate instead")
	case errors.Is(err, payroll.ErrPayRuleNotFound):
		NotFound(w, "Pay rule not found")
	case errors.Is(err, payroll.ErrPayRuleNameExists):
		Conflict(w, "Pay rule name already exists")
	case errors.Is(err, payroll.ErrPayRuleInUse):
		Conflict(w, "Pay rule is recorded in saved calculations, deactivate instead")
	case errors.Is(err, payroll.ErrCalculationNotFound):
		NotFound(w, "Pay calculation not found")
	case errors.Is(err, payroll.ErrInvalidPayPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, payroll.ErrNoActiveEmployees):
		BadRequest(w, "No active employees to calculate", nil)
	case errors.Is(err, payroll.ErrCalculationForbidden):
		Forbidden(w, "Only admins can calculate payroll")

	// Leave domain errors
	case errors.Is(err, leave.ErrApplicationNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrApplicationNotPending):
		Conflict(w, "Leave application already processed")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An application already covers part of this range")
	case errors.Is(err, leave.ErrPayCodeNotAbsence):
		BadRequest(w, "Pay code is not an absence code", nil)
	case errors.Is(err, leave.ErrCannotApproveOwnLeave):
		Forbidden(w, "Cannot approve your own leave application")
	case errors.Is(err, leave.ErrNotApplicationOwner):
		Forbidden(w, "Leave application belongs to another employee")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, schedule.ErrShiftConflict):
		Conflict(w, "Shift overlaps an existing shift")
	case errors.Is(err, schedule.ErrShiftPublished):
		Conflict(w, "Published shifts cannot be deleted")
	case errors.Is(err, schedule.ErrEndBeforeStart):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, schedule.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
