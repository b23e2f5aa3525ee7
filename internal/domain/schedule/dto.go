package schedule

import (
	"strings"

	"github.com/clinicops/rota-backend-go/internal/pkg/clock"
	"github.com/clinicops/rota-backend-go/internal/pkg/validator"
)

// ValidationReport categorizes rule violations found in a grid. Errors mark
// hard staffing or contractual breaches; warnings are advisory and leave the
// schedule usable.
type ValidationReport struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Clean reports whether the grid passed with no errors (warnings allowed).
func (r ValidationReport) Clean() bool {
	return len(r.Errors) == 0
}

type WeekResponse struct {
	WeekStart  string           `json:"week_start"`
	Grid       Grid             `json:"grid"`
	Validation ValidationReport `json:"validation"`
}

// ShiftDetail is one counted shift in an hours breakdown.
type ShiftDetail struct {
	Day      string  `json:"day"`
	BranchID string  `json:"branch_id"`
	Hours    float64 `json:"hours"`
}

// StaffHours is the aggregated worked time of one person over a week or a
// pay cycle.
type StaffHours struct {
	StaffID        string        `json:"staff_id"`
	Name           string        `json:"name"`
	Role           string        `json:"role"`
	EmploymentType string        `json:"employment_type"`
	TotalShifts    int           `json:"total_shifts"`
	TotalHours     float64       `json:"total_hours"`
	Details        []ShiftDetail `json:"details,omitempty"`
}

type HoursResponse struct {
	WeekStart  string                `json:"week_start,omitempty"`
	CycleStart string                `json:"cycle_start,omitempty"`
	Staff      map[string]StaffHours `json:"staff"`
}

// TimeSlot is one assignable time window offered to manual edits: morning,
// afternoon or full day, pre-filtered against the member's existing shifts.
type TimeSlot struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

var assignableRoles = []string{"nurse", "receptionist"}

type PlaceAssignmentRequest struct {
	WeekStart  string `json:"-"`
	Day        string `json:"day"`
	BranchID   string `json:"branch_id"`
	Role       string `json:"role"`
	StaffID    string `json:"staff_id"`
	ShiftStart string `json:"shift_start,omitempty"`
	ShiftEnd   string `json:"shift_end,omitempty"`
}

func (r *PlaceAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Day, clock.DayNames) {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be one of: " + strings.Join(clock.DayNames, ", "),
		})
	}
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "branch_id is required",
		})
	}
	if !validator.IsInSlice(r.Role, assignableRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be nurse or receptionist",
		})
	}
	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}
	if (r.ShiftStart == "") != (r.ShiftEnd == "") {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "shift_start and shift_end must be set together",
		})
	}
	if r.ShiftStart != "" {
		if !validator.IsValidClock(r.ShiftStart) || !validator.IsValidClock(r.ShiftEnd) {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_start",
				Message: "shift times must be in HH:MM format",
			})
		} else if clock.ToMinutes(r.ShiftEnd) <= clock.ToMinutes(r.ShiftStart) {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_end",
				Message: "shift_end must be after shift_start",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RemoveAssignmentRequest struct {
	WeekStart string `json:"-"`
	Day       string `json:"day"`
	BranchID  string `json:"branch_id"`
	Role      string `json:"role"`
	StaffID   string `json:"staff_id"`
}

func (r *RemoveAssignmentRequest) Validate() error {
	return validateSlotRef(r.Day, r.BranchID, r.Role, r.StaffID)
}

type ToggleLockRequest struct {
	WeekStart string `json:"-"`
	Day       string `json:"day"`
	BranchID  string `json:"branch_id"`
	Role      string `json:"role"`
	StaffID   string `json:"staff_id"`
}

func (r *ToggleLockRequest) Validate() error {
	return validateSlotRef(r.Day, r.BranchID, r.Role, r.StaffID)
}

type MoveAssignmentRequest struct {
	WeekStart    string `json:"-"`
	FromDay      string `json:"from_day"`
	FromBranchID string `json:"from_branch_id"`
	ToDay        string `json:"to_day"`
	ToBranchID   string `json:"to_branch_id"`
	Role         string `json:"role"`
	StaffID      string `json:"staff_id"`
}

func (r *MoveAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := validateSlotRef(r.FromDay, r.FromBranchID, r.Role, r.StaffID); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if !validator.IsInSlice(r.ToDay, clock.DayNames) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_day",
			Message: "to_day must be one of: " + strings.Join(clock.DayNames, ", "),
		})
	}
	if validator.IsEmpty(r.ToBranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_branch_id",
			Message: "to_branch_id is required",
		})
	}
	if r.FromDay == r.ToDay && r.FromBranchID == r.ToBranchID {
		errs = append(errs, validator.ValidationError{
			Field:   "to_branch_id",
			Message: "move target must differ from the source cell",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateSlotRef(day, branchID, role, staffID string) error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(day, clock.DayNames) {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be one of: " + strings.Join(clock.DayNames, ", "),
		})
	}
	if validator.IsEmpty(branchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "branch_id is required",
		})
	}
	if !validator.IsInSlice(role, assignableRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be nurse or receptionist",
		})
	}
	if validator.IsEmpty(staffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
