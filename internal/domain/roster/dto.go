package roster

import (
	"strings"
	"time"

	"github.com/clinicops/rota-backend-go/internal/pkg/clock"
	"github.com/clinicops/rota-backend-go/internal/pkg/validator"
)

type CreateStaffRequest struct {
	Name               string   `json:"name"`
	Role               string   `json:"role"`
	EmploymentType     string   `json:"employment_type"`
	Branches           []string `json:"branches"`
	LastResortBranches []string `json:"last_resort_branches,omitempty"`
	MainBranch         string   `json:"main_branch,omitempty"`
	AlsoMainBranch     string   `json:"also_main_branch,omitempty"`
	AvailableDays      []string `json:"available_days,omitempty"`
	Priority           bool     `json:"priority"`
	CanWorkAlone       bool     `json:"can_work_alone"`
	WeekendBothOrNone  bool     `json:"weekend_both_or_none"`
	MinShiftsPerWeek   int      `json:"min_shifts_per_week,omitempty"`
	MonthlyHoursTarget float64  `json:"monthly_hours_target,omitempty"`
	Color              string   `json:"color,omitempty"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: " + strings.Join(RoleValues, ", "),
		})
	}
	if !validator.IsInSlice(r.EmploymentType, EmploymentTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of: " + strings.Join(EmploymentTypeValues, ", "),
		})
	}
	if r.Role != string(RoleSupport) && len(r.Branches) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "branches",
			Message: "at least one branch is required for schedulable roles",
		})
	}
	for _, day := range r.AvailableDays {
		if !validator.IsInSlice(day, clock.DayNames) {
			errs = append(errs, validator.ValidationError{
				Field:   "available_days",
				Message: "unknown weekday: " + day,
			})
		}
	}
	if r.MinShiftsPerWeek < 0 || r.MinShiftsPerWeek > 7 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_shifts_per_week",
			Message: "min_shifts_per_week must be between 0 and 7",
		})
	}
	if r.MonthlyHoursTarget != 0 && r.EmploymentType != string(EmploymentPermanent) {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_hours_target",
			Message: "monthly_hours_target applies to permanent staff only",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStaffRequest struct {
	ID                 string    `json:"-"`
	Name               *string   `json:"name,omitempty"`
	Role               *string   `json:"role,omitempty"`
	EmploymentType     *string   `json:"employment_type,omitempty"`
	Branches           *[]string `json:"branches,omitempty"`
	LastResortBranches *[]string `json:"last_resort_branches,omitempty"`
	MainBranch         *string   `json:"main_branch,omitempty"`
	AlsoMainBranch     *string   `json:"also_main_branch,omitempty"`
	AvailableDays      *[]string `json:"available_days,omitempty"`
	Priority           *bool     `json:"priority,omitempty"`
	CanWorkAlone       *bool     `json:"can_work_alone,omitempty"`
	WeekendBothOrNone  *bool     `json:"weekend_both_or_none,omitempty"`
	MinShiftsPerWeek   *int      `json:"min_shifts_per_week,omitempty"`
	MonthlyHoursTarget *float64  `json:"monthly_hours_target,omitempty"`
	Color              *string   `json:"color,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: " + strings.Join(RoleValues, ", "),
		})
	}
	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, EmploymentTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of: " + strings.Join(EmploymentTypeValues, ", "),
		})
	}
	if r.AvailableDays != nil {
		for _, day := range *r.AvailableDays {
			if !validator.IsInSlice(day, clock.DayNames) {
				errs = append(errs, validator.ValidationError{
					Field:   "available_days",
					Message: "unknown weekday: " + day,
				})
			}
		}
	}
	if r.MinShiftsPerWeek != nil && (*r.MinShiftsPerWeek < 0 || *r.MinShiftsPerWeek > 7) {
		errs = append(errs, validator.ValidationError{
			Field:   "min_shifts_per_week",
			Message: "min_shifts_per_week must be between 0 and 7",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StaffResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Role               string   `json:"role"`
	EmploymentType     string   `json:"employment_type"`
	Branches           []string `json:"branches"`
	LastResortBranches []string `json:"last_resort_branches,omitempty"`
	MainBranch         string   `json:"main_branch,omitempty"`
	AlsoMainBranch     string   `json:"also_main_branch,omitempty"`
	AvailableDays      []string `json:"available_days,omitempty"`
	Priority           bool     `json:"priority"`
	CanWorkAlone       bool     `json:"can_work_alone"`
	WeekendBothOrNone  bool     `json:"weekend_both_or_none"`
	MinShiftsPerWeek   int      `json:"min_shifts_per_week,omitempty"`
	MonthlyHoursTarget float64  `json:"monthly_hours_target,omitempty"`
	Color              string   `json:"color,omitempty"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

func ToResponse(s StaffMember) StaffResponse {
	return StaffResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Role:               string(s.Role),
		EmploymentType:     string(s.EmploymentType),
		Branches:           s.Branches,
		LastResortBranches: s.LastResortBranches,
		MainBranch:         s.MainBranch,
		AlsoMainBranch:     s.AlsoMainBranch,
		AvailableDays:      s.AvailableDays,
		Priority:           s.Priority,
		CanWorkAlone:       s.CanWorkAlone,
		WeekendBothOrNone:  s.WeekendBothOrNone,
		MinShiftsPerWeek:   s.MinShiftsPerWeek,
		MonthlyHoursTarget: s.MonthlyHoursTarget,
		Color:              s.Color,
		CreatedAt:          s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          s.UpdatedAt.Format(time.RFC3339),
	}
}
