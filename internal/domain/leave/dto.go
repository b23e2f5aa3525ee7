package leave

import (
	"github.com/clinicops/rota-backend-go/internal/pkg/clock"
	"github.com/clinicops/rota-backend-go/internal/pkg/validator"
)

type SetLeaveRequest struct {
	StaffID string   `json:"-"`
	Dates   []string `json:"dates"`
}

func (r *SetLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}
	for _, d := range r.Dates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dates",
				Message: "invalid date: " + d,
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetShiftRequestsRequest struct {
	WeekStart string            `json:"-"`
	StaffID   string            `json:"-"`
	Requests  map[string]string `json:"requests"` // weekday name -> branch ID
}

func (r *SetShiftRequestsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be in YYYY-MM-DD format",
		})
	}
	for day := range r.Requests {
		if !validator.IsInSlice(day, clock.DayNames) {
			errs = append(errs, validator.ValidationError{
				Field:   "requests",
				Message: "unknown weekday: " + day,
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
