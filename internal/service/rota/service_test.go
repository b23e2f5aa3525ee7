package rota

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicops/rota-backend-go/internal/domain/roster"
	"github.com/clinicops/rota-backend-go/internal/domain/schedule"
)

// In-memory repositories standing in for the postgres adapters. Grids are
// cloned on the way in and out so edits on a loaded copy never leak into
// the store before Save.

type memGridRepo struct {
	weeks map[string]schedule.Grid
}

func newMemGridRepo() *memGridRepo {
	return &memGridRepo{weeks: map[string]schedule.Grid{}}
}

func (m *memGridRepo) GetByWeek(_ context.Context, weekStart string) (schedule.Grid, error) {
	g, ok := m.weeks[weekStart]
	if !ok {
		return nil, schedule.ErrGridNotFound
	}
	return g.Clone(), nil
}

func (m *memGridRepo) Save(_ context.Context, weekStart string, grid schedule.Grid) error {
	m.weeks[weekStart] = grid.Clone()
	return nil
}

func (m *memGridRepo) GetRange(_ context.Context, from, to string) (map[string]schedule.Grid, error) {
	out := make(map[string]schedule.Grid)
	for key, g := range m.weeks {
		if key >= from && key <= to {
			out[key] = g.Clone()
		}
	}
	return out, nil
}

type memStaffRepo struct {
	members []roster.StaffMember
}

func (m *memStaffRepo) Create(_ context.Context, member roster.StaffMember) (roster.StaffMember, error) {
	m.members = append(m.members, member)
	return member, nil
}

func (m *memStaffRepo) GetByID(_ context.Context, id string) (roster.StaffMember, error) {
	if s, ok := roster.ByID(m.members, id); ok {
		return s, nil
	}
	return roster.StaffMember{}, roster.ErrStaffNotFound
}

func (m *memStaffRepo) GetAll(_ context.Context) ([]roster.StaffMember, error) {
	return m.members, nil
}

func (m *memStaffRepo) Update(_ context.Context, _ roster.UpdateStaffRequest) (roster.StaffMember, error) {
	return roster.StaffMember{}, roster.ErrStaffNotFound
}

func (m *memStaffRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func newTestService(t *testing.T, staff []roster.StaffMember, grid schedule.Grid) (schedule.Service, *memGridRepo) {
	t.Helper()
	grids := newMemGridRepo()
	if grid != nil {
		require.NoError(t, grids.Save(context.Background(), testWeek, grid))
	}
	svc := NewService(testEngine(), grids, &memStaffRepo{members: staff}, nil, nil)
	return svc, grids
}

func TestMoveAssignment_RejectsConflictingTarget(t *testing.T) {
	engine := testEngine()
	parkview, riverside := engine.Branches()[0], engine.Branches()[1]

	grid := schedule.NewGrid(engine.Branches())
	require.NoError(t, grid.Place(parkview, "Monday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Nina"}))
	require.NoError(t, grid.Place(riverside, "Tuesday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Nina"}))

	svc, grids := newTestService(t, []roster.StaffMember{
		nurse("n1", "Nina", "parkview", "riverside"),
	}, grid)

	// Every riverside Monday window overlaps the full parkview day.
	_, err := svc.MoveAssignment(context.Background(), schedule.MoveAssignmentRequest{
		WeekStart: testWeek,
		FromDay:   "Tuesday", FromBranchID: "riverside",
		ToDay: "Monday", ToBranchID: "riverside",
		Role: "nurse", StaffID: "n1",
	})
	assert.ErrorIs(t, err, schedule.ErrShiftConflict)

	// The failed move leaves the stored week untouched.
	stored, err := grids.GetByWeek(context.Background(), testWeek)
	require.NoError(t, err)
	assert.Equal(t, []string{"n1"}, cellStaffIDs(stored.Cell("Tuesday", "riverside").Nurses))
	assert.Empty(t, stored.Cell("Monday", "riverside").Nurses)
}

func TestMoveAssignment_PicksPartialWindowWhenFullDayConflicts(t *testing.T) {
	engine := testEngine()
	riverside, clinic := engine.Branches()[1], engine.Branches()[3]

	grid := schedule.NewGrid(engine.Branches())
	require.NoError(t, grid.Place(clinic, "Saturday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Nina", ShiftStart: "08:00", ShiftEnd: "12:00"}))
	require.NoError(t, grid.Place(riverside, "Friday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Nina"}))

	svc, _ := newTestService(t, []roster.StaffMember{
		nurse("n1", "Nina", "parkview", "riverside", "clinic"),
	}, grid)

	// Parkview Saturday runs 08:00-16:00; the clinic morning rules out the
	// full day and the morning half, so the move lands on the afternoon.
	res, err := svc.MoveAssignment(context.Background(), schedule.MoveAssignmentRequest{
		WeekStart: testWeek,
		FromDay:   "Friday", FromBranchID: "riverside",
		ToDay: "Saturday", ToBranchID: "parkview",
		Role: "nurse", StaffID: "n1",
	})
	require.NoError(t, err)

	sat := res.Grid.Cell("Saturday", "parkview")
	require.Len(t, sat.Nurses, 1)
	assert.Equal(t, "12:00", sat.Nurses[0].ShiftStart)
	assert.Equal(t, "16:00", sat.Nurses[0].ShiftEnd)
	assert.Empty(t, res.Grid.Cell("Friday", "riverside").Nurses)
}

func TestMoveAssignment_FullDayAndLockTravelWhenTargetFree(t *testing.T) {
	engine := testEngine()
	parkview := engine.Branches()[0]

	grid := schedule.NewGrid(engine.Branches())
	require.NoError(t, grid.Place(parkview, "Monday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Nina", Locked: true}))

	svc, _ := newTestService(t, []roster.StaffMember{
		nurse("n1", "Nina", "parkview", "riverside"),
	}, grid)

	res, err := svc.MoveAssignment(context.Background(), schedule.MoveAssignmentRequest{
		WeekStart: testWeek,
		FromDay:   "Monday", FromBranchID: "parkview",
		ToDay: "Tuesday", ToBranchID: "riverside",
		Role: "nurse", StaffID: "n1",
	})
	require.NoError(t, err)

	tue := res.Grid.Cell("Tuesday", "riverside")
	require.Len(t, tue.Nurses, 1)
	assert.True(t, tue.Nurses[0].Locked)
	assert.Empty(t, tue.Nurses[0].ShiftStart)
	assert.Empty(t, tue.Nurses[0].ShiftEnd)
}

func TestMoveAssignment_ClosedTargetDay(t *testing.T) {
	engine := testEngine()
	parkview := engine.Branches()[0]

	grid := schedule.NewGrid(engine.Branches())
	require.NoError(t, grid.Place(parkview, "Monday", roster.RoleNurse,
		schedule.Assignment{StaffID: "n1", Name: "Nina"}))

	svc, _ := newTestService(t, []roster.StaffMember{
		nurse("n1", "Nina", "parkview", "kensington"),
	}, grid)

	_, err := svc.MoveAssignment(context.Background(), schedule.MoveAssignmentRequest{
		WeekStart: testWeek,
		FromDay:   "Monday", FromBranchID: "parkview",
		ToDay: "Sunday", ToBranchID: "kensington",
		Role: "nurse", StaffID: "n1",
	})
	assert.ErrorIs(t, err, schedule.ErrBranchClosed)
}
