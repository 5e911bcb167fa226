package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/qhamayedwa/wfm-backend-go/internal/domain/auth"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/leave"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/payroll"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/schedule"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/timeentry"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/user"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid credentials",
			err:        auth.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "revoked refresh token",
			err:        auth.ErrRefreshTokenRevoked,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "admin privilege required",
			err:        user.ErrAdminPrivilegeRequired,
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "email exists",
			err:        user.ErrEmailExists,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "already clocked in",
			err:        timeentry.ErrAlreadyClockedIn,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "break exceeds span",
			err:        timeentry.ErrBreakExceedsSpan,
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "pay code in use",
			err:        payroll.ErrPayCodeInUse,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "calculation forbidden",
			err:        payroll.ErrCalculationForbidden,
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "calculation not found",
			err:        payroll.ErrCalculationNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "overlapping leave",
			err:        leave.ErrOverlappingLeave,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "shift conflict",
			err:        schedule.ErrShiftConflict,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "unknown error falls back to 500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:       "wrapped sentinel still matches",
			err:        fmt.Errorf("get entry: %w", timeentry.ErrTimeEntryNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp Response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleErrorValidation(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password must be at least 8 characters long"},
	}

	w := httptest.NewRecorder()
	HandleError(w, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "email is required", resp.Error.Details["email"])
	assert.Equal(t, "password must be at least 8 characters long", resp.Error.Details["password"])
}
