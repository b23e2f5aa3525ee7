// Package fixtures holds the seed reference data for a fresh deployment:
// the branch network with its operating-hours tables and the static
// scheduling rules that are configuration rather than roster data.
package fixtures

import (
	"github.com/clinicops/rota-backend-go/internal/domain/branch"
	"github.com/clinicops/rota-backend-go/internal/domain/roster"
)

// GetDefaultBranches returns the branch network seeded on first run. The
// hours tables encode the staffing quirks of the operation: Parkview runs
// two nurse slots on its busy Saturday and a reduced lunch deduction on its
// short Sunday, and the hydration clinic is a nurse-only overflow site.
func GetDefaultBranches() []branch.Branch {
	return []branch.Branch{
		{
			ID:    "parkview",
			Name:  "Parkview",
			Color: "teal",
			Hours: map[string]branch.DayHours{
				"Monday":    {Open: "09:00", Close: "17:00", ShiftHours: 8, Lunch: 1},
				"Tuesday":   {Open: "09:00", Close: "17:00", ShiftHours: 8, Lunch: 1},
				"Wednesday": {Open: "09:00", Close: "17:00", ShiftHours: 8, Lunch: 1},
				"Thursday":  {Open: "09:00", Close: "17:00", ShiftHours: 8, Lunch: 1},
				"Friday":    {Open: "09:00", Close: "17:00", ShiftHours: 8, Lunch: 1},
				"Saturday":  {Open: "08:00", Close: "16:00", ShiftHours: 8, Lunch: 1, MaxNurses: 2},
				"Sunday":    {Open: "09:00", Close: "13:00", ShiftHours: 4, Lunch: 0.5},
			},
		},
		{
			ID:    "riverside",
			Name:  "Riverside",
			Color: "blue",
			Hours: map[string]branch.DayHours{
				"Monday":    {Open: "09:00", Close: "17:00", ShiftHours: 8, Lunch: 1},
				"Tuesday":   {Open: "09:00", Close: "17:00", ShiftHours: 8, Lunch: 1},
				"Wednesday": {Open: "09:00", Close: "17:00", ShiftHours: 8, Lunch: 1},
				"Thursday":  {Open: "09:00", Close: "17:00", ShiftHours: 8, Lunch: 1},
				"Friday":    {Open: "09:00", Close: "17:00", ShiftHours: 8, Lunch: 1},
				"Saturday":  {Open: "09:00", Close: "14:00", ShiftHours: 5, Lunch: 1},
			},
		},
		{
			ID:    "kensington",
			Name:  "Kensington",
			Color: "amber",
			Hours: map[string]branch.DayHours{
				"Monday":    {Open: "08:30", Close: "16:30", ShiftHours: 8, Lunch: 1},
				"Tuesday":   {Open: "08:30", Close: "16:30", ShiftHours: 8, Lunch: 1},
				"Wednesday": {Open: "08:30", Close: "16:30", ShiftHours: 8, Lunch: 1},
				"Thursday":  {Open: "08:30", Close: "16:30", ShiftHours: 8, Lunch: 1},
				"Friday":    {Open: "08:30", Close: "16:30", ShiftHours: 8, Lunch: 1},
			},
		},
		{
			ID:       "clinic",
			Name:     "Hydration Clinic",
			Color:    "purple",
			IsClinic: true,
			Hours: map[string]branch.DayHours{
				"Wednesday": {Open: "09:00", Close: "13:00", ShiftHours: 4, Lunch: 0.5},
				"Saturday":  {Open: "08:00", Close: "12:00", ShiftHours: 4, Lunch: 0.5},
			},
		},
	}
}

// GetStaticRules returns the scheduling rules that belong to the branch
// configuration rather than to any one staff member. Currently just the
// Saturday split between the clinic morning and the Parkview afternoon.
func GetStaticRules() []roster.SpecialRule {
	return []roster.SpecialRule{
		{
			Kind:             roster.RuleSplitShiftOverflow,
			Day:              "Saturday",
			ClinicBranchID:   "clinic",
			OverflowBranchID: "parkview",
		},
	}
}
