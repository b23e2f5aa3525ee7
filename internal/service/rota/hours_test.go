package rota

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicops/rota-backend-go/internal/domain/roster"
	"github.com/clinicops/rota-backend-go/internal/domain/schedule"
)

func support(id, name string) roster.StaffMember {
	return roster.StaffMember{
		ID:             id,
		Name:           name,
		Role:           roster.RoleSupport,
		EmploymentType: roster.EmploymentPermanent,
	}
}

func TestWeeklyHours_FullAndPartialDays(t *testing.T) {
	engine := testEngine()
	staff := []roster.StaffMember{
		nurse("n1", "Asha", "parkview", "clinic"),
		receptionist("r1", "Bea", "parkview"),
	}
	branches := engine.Branches()
	parkview, clinic := branches[0], branches[3]

	grid := schedule.NewGrid(branches)
	// Full day Monday (8h per the parkview hours table).
	require.NoError(t, grid.Place(parkview, "Monday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Asha"}))
	// Saturday split: clinic morning 4h plus parkview afternoon 4h.
	require.NoError(t, grid.Place(clinic, "Saturday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Asha", ShiftStart: "08:00", ShiftEnd: "12:00"}))
	require.NoError(t, grid.Place(parkview, "Saturday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Asha", ShiftStart: "12:00", ShiftEnd: "16:00"}))

	hours := engine.WeeklyHours(grid, staff)

	asha := hours["n1"]
	assert.Equal(t, 3, asha.TotalShifts)
	assert.InDelta(t, 16.0, asha.TotalHours, 0.001)
	require.Len(t, asha.Details, 3)

	// Unscheduled staff still get a zeroed entry.
	bea := hours["r1"]
	assert.Equal(t, 0, bea.TotalShifts)
	assert.Zero(t, bea.TotalHours)
}

func TestWeeklyHours_SkipsUnknownStaff(t *testing.T) {
	engine := testEngine()
	grid := schedule.NewGrid(engine.Branches())
	require.NoError(t, grid.Place(engine.Branches()[0], "Monday", roster.RoleNurse,
		schedule.Assignment{StaffID: "ghost", Name: "Old Nurse"}))

	hours := engine.WeeklyHours(grid, nil)

	assert.Empty(t, hours)
}

func TestPayCycleHours_WindowAndLunchDeduction(t *testing.T) {
	engine := testEngine()
	staff := []roster.StaffMember{
		nurse("n1", "Asha", "parkview", "clinic"),
		support("s1", "Pam"),
	}
	branches := engine.Branches()
	parkview, clinic := branches[0], branches[3]

	// Week of Monday 2025-03-24; the cycle starting 2025-03-25 covers
	// Tuesday onward.
	grid := schedule.NewGrid(branches)
	// Monday 2025-03-24: before the cycle, must not count.
	require.NoError(t, grid.Place(parkview, "Monday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Asha"}))
	// Tuesday 2025-03-25: 8h minus 1h lunch.
	require.NoError(t, grid.Place(parkview, "Tuesday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Asha"}))
	// Saturday 2025-03-29 split day: 4h + 4h minus the smallest lunch of
	// the branches worked (clinic 0.5 vs parkview 1.0).
	require.NoError(t, grid.Place(clinic, "Saturday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Asha", ShiftStart: "08:00", ShiftEnd: "12:00"}))
	require.NoError(t, grid.Place(parkview, "Saturday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Asha", ShiftStart: "12:00", ShiftEnd: "16:00"}))

	grids := map[string]schedule.Grid{"2025-03-24": grid}

	hours, err := engine.PayCycleHours(grids, staff, "2025-03-25")
	require.NoError(t, err)

	asha := hours["n1"]
	assert.Equal(t, 3, asha.TotalShifts)
	assert.InDelta(t, 14.5, asha.TotalHours, 0.001)

	// Support staff always appear in the payroll output.
	pam, ok := hours["s1"]
	require.True(t, ok)
	assert.Zero(t, pam.TotalHours)
}

func TestPayCycleHours_SpansMultipleWeeks(t *testing.T) {
	engine := testEngine()
	staff := []roster.StaffMember{nurse("n1", "Asha", "parkview")}
	parkview := engine.Branches()[0]

	week1 := schedule.NewGrid(engine.Branches())
	require.NoError(t, week1.Place(parkview, "Friday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Asha"}))
	week2 := schedule.NewGrid(engine.Branches())
	require.NoError(t, week2.Place(parkview, "Monday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Asha"}))

	grids := map[string]schedule.Grid{
		"2025-03-24": week1, // Friday 2025-03-28, inside the cycle
		"2025-04-21": week2, // Monday 2025-04-21, inside (cycle ends 04-24)
	}

	hours, err := engine.PayCycleHours(grids, staff, "2025-03-25")
	require.NoError(t, err)

	asha := hours["n1"]
	assert.Equal(t, 2, asha.TotalShifts)
	assert.InDelta(t, 14.0, asha.TotalHours, 0.001)
}

func TestPayCycleHours_ExcludesDaysPastCycleEnd(t *testing.T) {
	engine := testEngine()
	staff := []roster.StaffMember{nurse("n1", "Asha", "parkview")}
	parkview := engine.Branches()[0]

	// Week of Monday 2025-04-21: Friday 2025-04-25 is past the cycle end
	// of 2025-04-24.
	grid := schedule.NewGrid(engine.Branches())
	require.NoError(t, grid.Place(parkview, "Friday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Asha"}))

	hours, err := engine.PayCycleHours(map[string]schedule.Grid{"2025-04-21": grid}, staff, "2025-03-25")
	require.NoError(t, err)

	_, scheduled := hours["n1"]
	assert.False(t, scheduled)
}

func TestPayCycleHours_KeepsDepartedStaff(t *testing.T) {
	engine := testEngine()
	parkview := engine.Branches()[0]

	// Tuesday 2025-03-25, inside the cycle; the worker is no longer on the
	// roster but must still appear on the payroll.
	grid := schedule.NewGrid(engine.Branches())
	require.NoError(t, grid.Place(parkview, "Tuesday", roster.RoleNurse,
		schedule.Assignment{StaffID: "ghost", Name: "Old Nurse"}))

	hours, err := engine.PayCycleHours(map[string]schedule.Grid{"2025-03-24": grid}, nil, "2025-03-25")
	require.NoError(t, err)

	ghost, ok := hours["ghost"]
	require.True(t, ok)
	assert.Equal(t, "Old Nurse", ghost.Name)
	assert.Equal(t, "unknown", ghost.Role)
	assert.Equal(t, 1, ghost.TotalShifts)
	assert.InDelta(t, 7.0, ghost.TotalHours, 0.001)
}

func TestPayCycleHours_InvalidCycleStart(t *testing.T) {
	engine := testEngine()

	_, err := engine.PayCycleHours(nil, nil, "not-a-date")
	assert.Error(t, err)
}
