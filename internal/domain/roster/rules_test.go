package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveRules(t *testing.T) {
	staff := []StaffMember{
		{
			ID:   "r1",
			Role: RoleReceptionist, WeekendBothOrNone: true,
		},
		{
			ID:   "n1",
			Role: RoleNurse, AvailableDays: []string{"Friday", "Saturday", "Sunday"},
			MainBranch: "parkview",
		},
		{
			ID:   "r2",
			Role: RoleReceptionist, MinShiftsPerWeek: 4,
		},
		{
			// Priority staff are placed by their own pass, never pinned.
			ID:   "n2",
			Role: RoleNurse, Priority: true,
			AvailableDays: []string{"Monday"}, MainBranch: "riverside",
		},
		{
			// Support roles never produce scheduling rules.
			ID:   "s1",
			Role: RoleSupport, MinShiftsPerWeek: 2,
		},
	}

	rules := DeriveRules(staff)
	require.Len(t, rules, 3)

	assert.Equal(t, SpecialRule{
		Kind:    RuleBothDaysOrNeither,
		StaffID: "r1",
		Days:    []string{"Saturday", "Sunday"},
	}, rules[0])
	assert.Equal(t, SpecialRule{
		Kind:     RuleFixedDayBranch,
		StaffID:  "n1",
		Days:     []string{"Friday", "Saturday", "Sunday"},
		BranchID: "parkview",
	}, rules[1])
	assert.Equal(t, SpecialRule{
		Kind:      RuleMinimumWeeklyShifts,
		StaffID:   "r2",
		MinShifts: 4,
	}, rules[2])
}
