package rota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicops/rota-backend-go/internal/domain/branch"
	"github.com/clinicops/rota-backend-go/internal/domain/leave"
	"github.com/clinicops/rota-backend-go/internal/domain/roster"
	"github.com/clinicops/rota-backend-go/internal/domain/schedule"
	"github.com/clinicops/rota-backend-go/internal/pkg/clock"
)

// service orchestrates the pure engine against storage: it loads the week's
// inputs, runs the requested transformation and persists the result.
type service struct {
	engine        *Engine
	grids         schedule.GridRepository
	staff         roster.StaffRepository
	leave         leave.LeaveRepository
	shiftRequests leave.ShiftRequestRepository
}

func NewService(
	engine *Engine,
	grids schedule.GridRepository,
	staff roster.StaffRepository,
	leaveRepo leave.LeaveRepository,
	shiftRequests leave.ShiftRequestRepository,
) schedule.Service {
	return &service{
		engine:        engine,
		grids:         grids,
		staff:         staff,
		leave:         leaveRepo,
		shiftRequests: shiftRequests,
	}
}

// normalizeWeekStart validates the week key and snaps it to its Monday.
func normalizeWeekStart(weekStart string) (string, error) {
	date, err := time.Parse(clock.DateLayout, weekStart)
	if err != nil {
		return "", leave.ErrInvalidWeekStart
	}
	return clock.WeekKey(date), nil
}

// loadGrid returns the stored grid for a week, or a fresh empty one when
// the week was never scheduled.
func (s *service) loadGrid(ctx context.Context, weekStart string) (schedule.Grid, error) {
	grid, err := s.grids.GetByWeek(ctx, weekStart)
	if errors.Is(err, schedule.ErrGridNotFound) {
		return schedule.NewGrid(s.engine.Branches()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load week grid: %w", err)
	}
	return grid, nil
}

func (s *service) weekResponse(ctx context.Context, weekStart string, grid schedule.Grid) (schedule.WeekResponse, error) {
	staff, err := s.staff.GetAll(ctx)
	if err != nil {
		return schedule.WeekResponse{}, fmt.Errorf("load staff: %w", err)
	}
	return schedule.WeekResponse{
		WeekStart:  weekStart,
		Grid:       grid,
		Validation: s.engine.Validate(grid, staff),
	}, nil
}

func (s *service) GetWeek(ctx context.Context, weekStart string) (schedule.WeekResponse, error) {
	weekStart, err := normalizeWeekStart(weekStart)
	if err != nil {
		return schedule.WeekResponse{}, err
	}
	grid, err := s.loadGrid(ctx, weekStart)
	if err != nil {
		return schedule.WeekResponse{}, err
	}
	return s.weekResponse(ctx, weekStart, grid)
}

func (s *service) AutoSchedule(ctx context.Context, weekStart string) (schedule.WeekResponse, error) {
	weekStart, err := normalizeWeekStart(weekStart)
	if err != nil {
		return schedule.WeekResponse{}, err
	}

	staff, err := s.staff.GetAll(ctx)
	if err != nil {
		return schedule.WeekResponse{}, fmt.Errorf("load staff: %w", err)
	}
	prior, err := s.grids.GetByWeek(ctx, weekStart)
	if err != nil && !errors.Is(err, schedule.ErrGridNotFound) {
		return schedule.WeekResponse{}, fmt.Errorf("load week grid: %w", err)
	}
	avail, err := s.leave.GetAll(ctx)
	if err != nil {
		return schedule.WeekResponse{}, fmt.Errorf("load leave: %w", err)
	}
	requests, err := s.shiftRequests.GetForWeek(ctx, weekStart)
	if err != nil {
		return schedule.WeekResponse{}, fmt.Errorf("load shift requests: %w", err)
	}

	grid := s.engine.AutoSchedule(staff, prior, avail, requests, weekStart)
	if err := s.grids.Save(ctx, weekStart, grid); err != nil {
		return schedule.WeekResponse{}, fmt.Errorf("save week grid: %w", err)
	}

	return schedule.WeekResponse{
		WeekStart:  weekStart,
		Grid:       grid,
		Validation: s.engine.Validate(grid, staff),
	}, nil
}

func (s *service) ClearWeek(ctx context.Context, weekStart string) (schedule.WeekResponse, error) {
	weekStart, err := normalizeWeekStart(weekStart)
	if err != nil {
		return schedule.WeekResponse{}, err
	}
	grid, err := s.loadGrid(ctx, weekStart)
	if err != nil {
		return schedule.WeekResponse{}, err
	}
	grid.ClearUnlocked()
	if err := s.grids.Save(ctx, weekStart, grid); err != nil {
		return schedule.WeekResponse{}, fmt.Errorf("save week grid: %w", err)
	}
	return s.weekResponse(ctx, weekStart, grid)
}

func (s *service) Validation(ctx context.Context, weekStart string) (schedule.ValidationReport, error) {
	week, err := s.GetWeek(ctx, weekStart)
	if err != nil {
		return schedule.ValidationReport{}, err
	}
	return week.Validation, nil
}

func (s *service) WeeklyHours(ctx context.Context, weekStart string) (schedule.HoursResponse, error) {
	weekStart, err := normalizeWeekStart(weekStart)
	if err != nil {
		return schedule.HoursResponse{}, err
	}
	grid, err := s.loadGrid(ctx, weekStart)
	if err != nil {
		return schedule.HoursResponse{}, err
	}
	staff, err := s.staff.GetAll(ctx)
	if err != nil {
		return schedule.HoursResponse{}, fmt.Errorf("load staff: %w", err)
	}
	return schedule.HoursResponse{
		WeekStart: weekStart,
		Staff:     s.engine.WeeklyHours(grid, staff),
	}, nil
}

func (s *service) PayCycleHours(ctx context.Context, cycleStart string) (schedule.HoursResponse, error) {
	weekKeys, err := clock.WeekKeysForPayCycle(cycleStart)
	if err != nil {
		return schedule.HoursResponse{}, leave.ErrInvalidDateFormat
	}
	grids := map[string]schedule.Grid{}
	if len(weekKeys) > 0 {
		grids, err = s.grids.GetRange(ctx, weekKeys[0], weekKeys[len(weekKeys)-1])
		if err != nil {
			return schedule.HoursResponse{}, fmt.Errorf("load cycle grids: %w", err)
		}
	}
	staff, err := s.staff.GetAll(ctx)
	if err != nil {
		return schedule.HoursResponse{}, fmt.Errorf("load staff: %w", err)
	}
	hours, err := s.engine.PayCycleHours(grids, staff, cycleStart)
	if err != nil {
		return schedule.HoursResponse{}, err
	}
	return schedule.HoursResponse{
		CycleStart: cycleStart,
		Staff:      hours,
	}, nil
}

func (s *service) PlaceAssignment(ctx context.Context, req schedule.PlaceAssignmentRequest) (schedule.WeekResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WeekResponse{}, err
	}
	weekStart, err := normalizeWeekStart(req.WeekStart)
	if err != nil {
		return schedule.WeekResponse{}, err
	}

	member, err := s.staff.GetByID(ctx, req.StaffID)
	if err != nil {
		return schedule.WeekResponse{}, err
	}
	b, ok := branch.ByID(s.engine.Branches(), req.BranchID)
	if !ok {
		return schedule.WeekResponse{}, branch.ErrBranchNotFound
	}
	hours, open := b.DayHours(req.Day)
	if !open {
		return schedule.WeekResponse{}, schedule.ErrBranchClosed
	}

	grid, err := s.loadGrid(ctx, weekStart)
	if err != nil {
		return schedule.WeekResponse{}, err
	}

	// A manual placement replaces any prior assignment of the same person
	// in the target cell and role.
	grid.Remove(req.Day, req.BranchID, roster.Role(req.Role), req.StaffID)

	newAssignment := schedule.Assignment{
		StaffID:    req.StaffID,
		Name:       member.Name,
		ShiftStart: req.ShiftStart,
		ShiftEnd:   req.ShiftEnd,
	}
	newStart, newEnd := newAssignment.Resolve(hours)
	for _, p := range grid.DayAssignments(req.StaffID, req.Day, s.engine.Branches()) {
		if p.BranchID == req.BranchID {
			continue
		}
		start, end := resolveWindow(s.engine.Branches(), req.Day, p)
		if clock.Overlaps(newStart, newEnd, start, end) {
			return schedule.WeekResponse{}, schedule.ErrShiftConflict
		}
	}

	if err := grid.Place(b, req.Day, roster.Role(req.Role), newAssignment); err != nil {
		return schedule.WeekResponse{}, err
	}
	if err := s.grids.Save(ctx, weekStart, grid); err != nil {
		return schedule.WeekResponse{}, fmt.Errorf("save week grid: %w", err)
	}
	return s.weekResponse(ctx, weekStart, grid)
}

func (s *service) RemoveAssignment(ctx context.Context, req schedule.RemoveAssignmentRequest) (schedule.WeekResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WeekResponse{}, err
	}
	weekStart, err := normalizeWeekStart(req.WeekStart)
	if err != nil {
		return schedule.WeekResponse{}, err
	}
	grid, err := s.loadGrid(ctx, weekStart)
	if err != nil {
		return schedule.WeekResponse{}, err
	}
	if !grid.Remove(req.Day, req.BranchID, roster.Role(req.Role), req.StaffID) {
		return schedule.WeekResponse{}, schedule.ErrAssignmentNotFound
	}
	if err := s.grids.Save(ctx, weekStart, grid); err != nil {
		return schedule.WeekResponse{}, fmt.Errorf("save week grid: %w", err)
	}
	return s.weekResponse(ctx, weekStart, grid)
}

func (s *service) ToggleLock(ctx context.Context, req schedule.ToggleLockRequest) (schedule.WeekResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WeekResponse{}, err
	}
	weekStart, err := normalizeWeekStart(req.WeekStart)
	if err != nil {
		return schedule.WeekResponse{}, err
	}
	grid, err := s.loadGrid(ctx, weekStart)
	if err != nil {
		return schedule.WeekResponse{}, err
	}
	if !grid.ToggleLock(req.Day, req.BranchID, roster.Role(req.Role), req.StaffID) {
		return schedule.WeekResponse{}, schedule.ErrAssignmentNotFound
	}
	if err := s.grids.Save(ctx, weekStart, grid); err != nil {
		return schedule.WeekResponse{}, fmt.Errorf("save week grid: %w", err)
	}
	return s.weekResponse(ctx, weekStart, grid)
}

// MoveAssignment relocates one assignment to another cell, taking the
// first offered time window that clears the member's other shifts on the
// target day: the full branch day when it fits, otherwise a partial slot.
// The lock flag travels; the source shift times do not, since the target
// branch's hours differ.
func (s *service) MoveAssignment(ctx context.Context, req schedule.MoveAssignmentRequest) (schedule.WeekResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WeekResponse{}, err
	}
	weekStart, err := normalizeWeekStart(req.WeekStart)
	if err != nil {
		return schedule.WeekResponse{}, err
	}
	toBranch, ok := branch.ByID(s.engine.Branches(), req.ToBranchID)
	if !ok {
		return schedule.WeekResponse{}, branch.ErrBranchNotFound
	}
	hours, open := toBranch.DayHours(req.ToDay)
	if !open {
		return schedule.WeekResponse{}, schedule.ErrBranchClosed
	}

	grid, err := s.loadGrid(ctx, weekStart)
	if err != nil {
		return schedule.WeekResponse{}, err
	}

	role := roster.Role(req.Role)
	var moved *schedule.Assignment
	for _, a := range grid.Cell(req.FromDay, req.FromBranchID).Role(role) {
		if a.StaffID == req.StaffID {
			copied := a
			moved = &copied
			break
		}
	}
	if moved == nil {
		return schedule.WeekResponse{}, schedule.ErrAssignmentNotFound
	}

	grid.Remove(req.FromDay, req.FromBranchID, role, req.StaffID)

	slots := s.engine.TimeSlots(grid, roster.StaffMember{ID: req.StaffID}, req.ToDay, toBranch.ID)
	if len(slots) == 0 {
		return schedule.WeekResponse{}, schedule.ErrShiftConflict
	}
	target := schedule.Assignment{
		StaffID: moved.StaffID,
		Name:    moved.Name,
		Locked:  moved.Locked,
	}
	if slots[0].Start != hours.Open || slots[0].End != hours.Close {
		target.ShiftStart, target.ShiftEnd = slots[0].Start, slots[0].End
	}
	if err := grid.Place(toBranch, req.ToDay, role, target); err != nil {
		return schedule.WeekResponse{}, err
	}
	if err := s.grids.Save(ctx, weekStart, grid); err != nil {
		return schedule.WeekResponse{}, fmt.Errorf("save week grid: %w", err)
	}
	return s.weekResponse(ctx, weekStart, grid)
}

func (s *service) TimeSlots(ctx context.Context, weekStart, day, branchID, staffID string) ([]schedule.TimeSlot, error) {
	weekStart, err := normalizeWeekStart(weekStart)
	if err != nil {
		return nil, err
	}
	member, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	grid, err := s.loadGrid(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	return s.engine.TimeSlots(grid, member, day, branchID), nil
}
