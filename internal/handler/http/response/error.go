package response

import (
	"errors"
	"net/http"

	"github.com/clinicops/rota-backend-go/internal/domain/branch"
	"github.com/clinicops/rota-backend-go/internal/domain/leave"
	"github.com/clinicops/rota-backend-go/internal/domain/roster"
	"github.com/clinicops/rota-backend-go/internal/domain/schedule"
	"github.com/clinicops/rota-backend-go/internal/pkg/validator"
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
	// Roster domain errors
	case errors.Is(err, roster.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, roster.ErrStaffNameRequired),
		errors.Is(err, roster.ErrInvalidRequestData):
		BadRequest(w, err.Error(), nil)

	// Branch domain errors
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidDateFormat),
		errors.Is(err, leave.ErrInvalidWeekStart):
		BadRequest(w, err.Error(), nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrGridNotFound):
		NotFound(w, "No schedule stored for that week")
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, schedule.ErrBranchClosed),
		errors.Is(err, schedule.ErrClinicReceptionist),
		errors.Is(err, schedule.ErrInvalidRole),
		errors.Is(err, schedule.ErrInvalidRequestData):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, schedule.ErrCellFull),
		errors.Is(err, schedule.ErrAlreadyAssigned),
		errors.Is(err, schedule.ErrShiftConflict):
		Conflict(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
