package rota

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicops/rota-backend-go/internal/domain/leave"
	"github.com/clinicops/rota-backend-go/internal/domain/roster"
	"github.com/clinicops/rota-backend-go/internal/domain/schedule"
	"github.com/clinicops/rota-backend-go/internal/fixtures"
)

// Week starting Monday 2025-03-24, used throughout the engine tests.
const testWeek = "2025-03-24"

func testEngine() *Engine {
	return NewEngine(fixtures.GetDefaultBranches(), fixtures.GetStaticRules())
}

func nurse(id, name string, branches ...string) roster.StaffMember {
	main := ""
	if len(branches) > 0 {
		main = branches[0]
	}
	return roster.StaffMember{
		ID:             id,
		Name:           name,
		Role:           roster.RoleNurse,
		EmploymentType: roster.EmploymentPermanent,
		Branches:       branches,
		MainBranch:     main,
	}
}

func receptionist(id, name string, branches ...string) roster.StaffMember {
	main := ""
	if len(branches) > 0 {
		main = branches[0]
	}
	return roster.StaffMember{
		ID:             id,
		Name:           name,
		Role:           roster.RoleReceptionist,
		EmploymentType: roster.EmploymentPermanent,
		Branches:       branches,
		MainBranch:     main,
	}
}

func cellStaffIDs(list []schedule.Assignment) []string {
	ids := make([]string, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.StaffID)
	}
	return ids
}

func TestAutoSchedule_FillsNurseAndReceptionistSlots(t *testing.T) {
	engine := testEngine()
	staff := []roster.StaffMember{
		nurse("n1", "Asha", "parkview"),
		receptionist("r1", "Bea", "parkview"),
	}

	grid := engine.AutoSchedule(staff, nil, nil, nil, testWeek)

	cell := grid.Cell("Monday", "parkview")
	assert.Equal(t, []string{"n1"}, cellStaffIDs(cell.Nurses))
	assert.Equal(t, []string{"r1"}, cellStaffIDs(cell.Receptionists))

	// Nobody may work a branch outside their list.
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"} {
		assert.Empty(t, grid.Cell(day, "riverside").Nurses, "riverside %s", day)
		assert.Empty(t, grid.Cell(day, "kensington").Nurses, "kensington %s", day)
	}
}

func TestAutoSchedule_IsDeterministic(t *testing.T) {
	engine := testEngine()
	staff := []roster.StaffMember{
		nurse("n1", "Asha", "parkview", "riverside"),
		nurse("n2", "Carl", "riverside", "parkview"),
		nurse("n3", "Dina", "kensington", "clinic"),
		receptionist("r1", "Bea", "parkview", "riverside"),
		receptionist("r2", "Elif", "kensington"),
	}

	first := engine.AutoSchedule(staff, nil, nil, nil, testWeek)
	second := engine.AutoSchedule(staff, nil, nil, nil, testWeek)

	require.Equal(t, first, second)
}

func TestAutoSchedule_NeverMutatesInputs(t *testing.T) {
	engine := testEngine()
	staff := []roster.StaffMember{nurse("n1", "Asha", "parkview")}
	prior := schedule.NewGrid(engine.Branches())
	require.NoError(t, prior.Place(engine.Branches()[0], "Monday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Asha", Locked: true}))
	priorCopy := prior.Clone()

	engine.AutoSchedule(staff, prior, nil, nil, testWeek)

	assert.Equal(t, priorCopy, prior)
}

func TestAutoSchedule_RespectsLeaveDates(t *testing.T) {
	engine := testEngine()
	staff := []roster.StaffMember{nurse("n1", "Asha", "parkview")}
	// Monday of the test week.
	avail := leave.Availability{"n1": {"2025-03-24"}}

	grid := engine.AutoSchedule(staff, nil, avail, nil, testWeek)

	assert.False(t, grid.IsAssigned("n1", "Monday"))
	assert.True(t, grid.IsAssigned("n1", "Tuesday"))
}

func TestAutoSchedule_CarriesOnlyLockedAssignmentsForward(t *testing.T) {
	engine := testEngine()
	staff := []roster.StaffMember{nurse("n1", "Asha", "parkview", "riverside")}

	prior := schedule.NewGrid(engine.Branches())
	riverside := engine.Branches()[1]
	require.NoError(t, prior.Place(riverside, "Monday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Asha", Locked: true}))
	require.NoError(t, prior.Place(riverside, "Tuesday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Asha"}))

	grid := engine.AutoSchedule(staff, prior, nil, nil, testWeek)

	// The locked pin survives at riverside even though parkview is the
	// main branch, and the unlocked one is rebuilt at parkview.
	assert.Equal(t, []string{"n1"}, cellStaffIDs(grid.Cell("Monday", "riverside").Nurses))
	assert.Empty(t, grid.Cell("Monday", "parkview").Nurses)
	assert.Equal(t, []string{"n1"}, cellStaffIDs(grid.Cell("Tuesday", "parkview").Nurses))
}

func TestAutoSchedule_PriorityStaffGetRequestedShifts(t *testing.T) {
	engine := testEngine()
	priorityNurse := nurse("n1", "Asha", "parkview", "riverside")
	priorityNurse.Priority = true
	staff := []roster.StaffMember{
		priorityNurse,
		nurse("n2", "Carl", "riverside"),
	}
	requests := leave.ShiftRequests{"n1": {"Tuesday": "riverside"}}

	grid := engine.AutoSchedule(staff, nil, nil, requests, testWeek)

	assert.True(t, grid.Cell("Tuesday", "riverside").Nurses[0].StaffID == "n1")
	// Main branch wins on days without a request.
	assert.Equal(t, []string{"n1"}, cellStaffIDs(grid.Cell("Monday", "parkview").Nurses))
}

func TestAutoSchedule_WeekendBothOrNeither(t *testing.T) {
	engine := testEngine()
	weekender := receptionist("r1", "Nadia", "parkview")
	weekender.WeekendBothOrNone = true
	staff := []roster.StaffMember{weekender}

	grid := engine.AutoSchedule(staff, nil, nil, nil, testWeek)
	assert.True(t, grid.IsAssigned("r1", "Saturday"))
	assert.True(t, grid.IsAssigned("r1", "Sunday"))
	// Both assignments land at the same branch.
	assert.Equal(t, []string{"r1"}, cellStaffIDs(grid.Cell("Saturday", "parkview").Receptionists))
	assert.Equal(t, []string{"r1"}, cellStaffIDs(grid.Cell("Sunday", "parkview").Receptionists))
}

func TestAutoSchedule_WeekendPairSkippedWhenOneDayOnLeave(t *testing.T) {
	engine := testEngine()
	weekender := receptionist("r1", "Nadia", "parkview")
	weekender.WeekendBothOrNone = true
	staff := []roster.StaffMember{weekender}
	// Sunday of the test week.
	avail := leave.Availability{"r1": {"2025-03-30"}}

	grid := engine.AutoSchedule(staff, nil, avail, nil, testWeek)

	assert.False(t, grid.IsAssigned("r1", "Saturday"))
	assert.False(t, grid.IsAssigned("r1", "Sunday"))
}

func TestAutoSchedule_MinimumWeeklyShifts(t *testing.T) {
	engine := testEngine()
	aloneNurse := nurse("n1", "Asha", "riverside")
	aloneNurse.CanWorkAlone = true
	partTimer := receptionist("r2", "Wendy", "riverside")
	partTimer.EmploymentType = roster.EmploymentPartTime
	partTimer.MinShiftsPerWeek = 3
	staff := []roster.StaffMember{aloneNurse, partTimer}

	grid := engine.AutoSchedule(staff, nil, nil, nil, testWeek)

	// The alone-capable nurse means riverside never needs a receptionist,
	// so only the contractual minimum places Wendy, and only 3 times.
	assert.Equal(t, 3, grid.ShiftCount("r2"))
}

func TestAutoSchedule_SplitShiftOverflowSaturday(t *testing.T) {
	engine := testEngine()
	clinicNurse := nurse("n1", "Asha", "parkview", "clinic")
	clinicNurse.AlsoMainBranch = "clinic"
	staff := []roster.StaffMember{
		clinicNurse,
		nurse("n2", "Carl", "parkview"),
	}

	grid := engine.AutoSchedule(staff, nil, nil, nil, testWeek)

	clinicCell := grid.Cell("Saturday", "clinic")
	require.Len(t, clinicCell.Nurses, 1)
	assert.Equal(t, "n1", clinicCell.Nurses[0].StaffID)
	assert.Equal(t, "08:00", clinicCell.Nurses[0].ShiftStart)
	assert.Equal(t, "12:00", clinicCell.Nurses[0].ShiftEnd)

	parkviewCell := grid.Cell("Saturday", "parkview")
	require.Len(t, parkviewCell.Nurses, 2)
	windows := map[string][2]string{}
	for _, a := range parkviewCell.Nurses {
		windows[a.StaffID] = [2]string{a.ShiftStart, a.ShiftEnd}
	}
	// The mover covers the afternoon, the stayer the complementary morning.
	assert.Equal(t, [2]string{"12:00", "16:00"}, windows["n1"])
	assert.Equal(t, [2]string{"08:00", "12:00"}, windows["n2"])
}

func TestAutoSchedule_ClinicIsOverflowOnlyOnOrdinaryDays(t *testing.T) {
	engine := testEngine()
	staff := []roster.StaffMember{
		nurse("n1", "Asha", "parkview"),
		nurse("n2", "Carl", "riverside"),
		nurse("n3", "Dina", "kensington"),
		nurse("n4", "Ivy", "parkview", "clinic"),
	}

	grid := engine.AutoSchedule(staff, nil, nil, nil, testWeek)

	// Wednesday: every branch covered by its main nurse, so the spare
	// clinic-eligible nurse overflows into the clinic.
	assert.Equal(t, []string{"n4"}, cellStaffIDs(grid.Cell("Wednesday", "clinic").Nurses))
}

func TestAutoSchedule_ClinicStaysEmptyWhenBranchesUncovered(t *testing.T) {
	engine := testEngine()
	// Only one nurse: branches cannot all be covered, so the clinic must
	// never draw them away on ordinary days.
	staff := []roster.StaffMember{nurse("n1", "Asha", "parkview", "clinic")}

	grid := engine.AutoSchedule(staff, nil, nil, nil, testWeek)

	assert.Empty(t, grid.Cell("Wednesday", "clinic").Nurses)
	assert.Equal(t, []string{"n1"}, cellStaffIDs(grid.Cell("Wednesday", "parkview").Nurses))
}

func TestAutoSchedule_NoDoubleBookingAcrossBranches(t *testing.T) {
	engine := testEngine()
	staff := []roster.StaffMember{
		nurse("n1", "Asha", "parkview", "riverside", "kensington"),
	}

	grid := engine.AutoSchedule(staff, nil, nil, nil, testWeek)

	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"} {
		count := 0
		for _, branchID := range []string{"parkview", "riverside", "kensington"} {
			count += len(grid.Cell(day, branchID).Nurses)
		}
		assert.Equal(t, 1, count, "one assignment on %s", day)
	}
}

func TestTimeSlots_OfferedWindows(t *testing.T) {
	engine := testEngine()
	member := nurse("n1", "Asha", "parkview")
	grid := schedule.NewGrid(engine.Branches())

	slots := engine.TimeSlots(grid, member, "Monday", "parkview")

	require.Len(t, slots, 3)
	assert.Equal(t, "Full day (9-17)", slots[0].Label)
	assert.Equal(t, "09:00", slots[1].Start)
	assert.Equal(t, "13:00", slots[1].End)
	assert.Equal(t, "13:00", slots[2].Start)
	assert.Equal(t, "17:00", slots[2].End)
}

func TestTimeSlots_FiltersConflictingWindows(t *testing.T) {
	engine := testEngine()
	member := nurse("n1", "Asha", "parkview", "clinic")
	grid := schedule.NewGrid(engine.Branches())
	clinic := engine.Branches()[3]
	require.NoError(t, grid.Place(clinic, "Saturday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Asha", ShiftStart: "08:00", ShiftEnd: "12:00"}))

	slots := engine.TimeSlots(grid, member, "Saturday", "parkview")

	// Parkview Saturday runs 08:00-16:00; only the afternoon half is
	// compatible with the clinic morning.
	require.Len(t, slots, 1)
	assert.Equal(t, "12:00", slots[0].Start)
	assert.Equal(t, "16:00", slots[0].End)
}
