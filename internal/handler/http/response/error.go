package response

import (
	"errors"
	"net/http"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/absence"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/attendance"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/auth"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/business"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/employee"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/shift"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/user"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or malformed token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, business.ErrBusinessNotFound):
		NotFound(w, "Business not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this business")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftOverlap):
		Conflict(w, "Employee already has a shift overlapping this time")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyBadgedIn):
		Conflict(w, "Employee already has an open session")
	case errors.Is(err, attendance.ErrNotBadgedIn):
		Conflict(w, "Employee has no open session")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Clock record not found")

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence request not found")
	case errors.Is(err, absence.ErrAlreadyDecided):
		Conflict(w, "Absence request already decided")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
