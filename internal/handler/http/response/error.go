package response

import (
	"errors"
	"net/http"

	"github.com/saliheu/KAMU-AKYS/internal/domain/auth"
	"github.com/saliheu/KAMU-AKYS/internal/domain/employee"
	"github.com/saliheu/KAMU-AKYS/internal/domain/holiday"
	"github.com/saliheu/KAMU-AKYS/internal/domain/leave"
	"github.com/saliheu/KAMU-AKYS/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Insufficient balance carries the available days in its message and is a
	// request error, not a conflict.
	var balanceErr *leave.InsufficientBalanceError
	if errors.As(err, &balanceErr) {
		BadRequest(w, balanceErr.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrTCNoExists):
		Conflict(w, "Identity number already registered")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date cannot be before start date", nil)
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "Leave request overlaps an existing pending or approved request")
	case errors.Is(err, leave.ErrSubstituteNotFound):
		BadRequest(w, "Substitute employee not found", nil)
	case errors.Is(err, leave.ErrNotOwner):
		Forbidden(w, "Only the request owner may perform this action")
	case errors.Is(err, leave.ErrUnauthorizedAccess):
		Forbidden(w, "Not allowed to view this leave request")
	case errors.Is(err, leave.ErrApprovalNotAllowed):
		Forbidden(w, "Not allowed to decide on this leave request")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotCancellable):
		BadRequest(w, "Leave request cannot be cancelled in its current status", nil)
	case errors.Is(err, leave.ErrLeaveAlreadyStarted):
		BadRequest(w, "Leave that has started cannot be cancelled", nil)
	case errors.Is(err, leave.ErrNotWithdrawable):
		BadRequest(w, "Only pending leave requests can be withdrawn", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on that date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
