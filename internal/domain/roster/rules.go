package roster

// RuleKind tags the bespoke per-person scheduling constraints that sit
// outside the general matching passes. The engine evaluates rules in the
// order they appear in the configured list, before generic gap-fill.
type RuleKind string

const (
	// RuleFixedDayBranch pins a staff member to one branch on a fixed set
	// of weekdays whenever they are available.
	RuleFixedDayBranch RuleKind = "fixed_day_branch"
	// RuleBothDaysOrNeither schedules a staff member on a day pair only
	// when both days are available, and always at the same branch.
	RuleBothDaysOrNeither RuleKind = "both_days_or_neither"
	// RuleMinimumWeeklyShifts guarantees a contractual minimum number of
	// shifts per week, over-staffing a branch if that is the only way.
	RuleMinimumWeeklyShifts RuleKind = "minimum_weekly_shifts"
	// RuleSplitShiftOverflow splits one nurse's day between a clinic
	// branch (morning) and an overflow branch (afternoon) on the weekly
	// busy day.
	RuleSplitShiftOverflow RuleKind = "split_shift_overflow"
)

// SpecialRule is one declarative scheduling constraint. Which fields are
// meaningful depends on Kind; the zero value of the rest is ignored.
type SpecialRule struct {
	Kind    RuleKind `json:"kind"`
	StaffID string   `json:"staff_id,omitempty"`

	// RuleFixedDayBranch / RuleBothDaysOrNeither
	Days     []string `json:"days,omitempty"`
	BranchID string   `json:"branch_id,omitempty"`

	// RuleMinimumWeeklyShifts
	MinShifts int `json:"min_shifts,omitempty"`

	// RuleSplitShiftOverflow
	Day              string `json:"day,omitempty"`
	ClinicBranchID   string `json:"clinic_branch_id,omitempty"`
	OverflowBranchID string `json:"overflow_branch_id,omitempty"`
}

var weekendDays = []string{"Saturday", "Sunday"}

// DeriveRules builds the per-person rule list from roster fields, in roster
// order so repeated derivations stay stable:
//   - a day-restricted member with a main branch becomes a FixedDayBranch
//     pin (priority staff are excluded; the priority pass places them),
//   - WeekendBothOrNone becomes a BothDaysOrNeither pair on the weekend,
//   - MinShiftsPerWeek becomes a MinimumWeeklyShifts guarantee.
//
// Branch-pairing rules such as RuleSplitShiftOverflow are configuration, not
// roster data, and are appended by the caller.
func DeriveRules(staff []StaffMember) []SpecialRule {
	var rules []SpecialRule
	for _, s := range staff {
		if !s.IsScheduleRole() {
			continue
		}
		switch {
		case s.WeekendBothOrNone:
			rules = append(rules, SpecialRule{
				Kind:    RuleBothDaysOrNeither,
				StaffID: s.ID,
				Days:    weekendDays,
			})
		case !s.Priority && len(s.AvailableDays) > 0 && s.MainBranch != "":
			rules = append(rules, SpecialRule{
				Kind:     RuleFixedDayBranch,
				StaffID:  s.ID,
				Days:     s.AvailableDays,
				BranchID: s.MainBranch,
			})
		}
		if s.MinShiftsPerWeek > 0 {
			rules = append(rules, SpecialRule{
				Kind:      RuleMinimumWeeklyShifts,
				StaffID:   s.ID,
				MinShifts: s.MinShiftsPerWeek,
			})
		}
	}
	return rules
}
