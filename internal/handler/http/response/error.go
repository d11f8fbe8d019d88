package response

import (
	"errors"
	"net/http"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/attendance"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/auth"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/branch"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/checkout"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/leave"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/user"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive),
		errors.Is(err, auth.ErrAccountNotVerified):
		Forbidden(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrEmployeeCodeExists),
		errors.Is(err, user.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrSupervisorNotFound),
		errors.Is(err, user.ErrSupervisorInvalidRole),
		errors.Is(err, user.ErrSupervisorSelf),
		errors.Is(err, user.ErrSupervisorBranch):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrForbidden):
		Forbidden(w, err.Error())

	// Branch domain errors
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, branch.ErrBranchNameExists):
		Conflict(w, err.Error())
	case errors.Is(err, branch.ErrBranchNotEmpty):
		Conflict(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrRecheckinDisabled):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNoActiveCheckIn),
		errors.Is(err, attendance.ErrPastCutoff):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrQRExpired):
		Gone(w, err.Error())
	case errors.Is(err, attendance.ErrQRAlreadyUsed):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrQRInvalidType),
		errors.Is(err, attendance.ErrQRInvalidPayload):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Checkout correction errors
	case errors.Is(err, checkout.ErrRequestNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, checkout.ErrDuplicateRequest),
		errors.Is(err, checkout.ErrAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, checkout.ErrCorrectionNotNeeded),
		errors.Is(err, checkout.ErrTimeBeforeCheckIn),
		errors.Is(err, checkout.ErrTimeAfterCutoff),
		errors.Is(err, checkout.ErrFutureAttendance),
		errors.Is(err, checkout.ErrNoSupervisorAssigned):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, checkout.ErrNotRequestOwner),
		errors.Is(err, checkout.ErrResolverNotAuthorized):
		Forbidden(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrApplicationNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrOverlappingLeave),
		errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, leave.ErrStartDateInPast):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrNotApplicationOwner),
		errors.Is(err, leave.ErrResolverNotAllowed):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
