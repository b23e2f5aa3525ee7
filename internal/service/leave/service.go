// Package leave implements the availability and shift-request operations:
// leave date sets per staff member and per-week branch requests.
package leave

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/clinicops/rota-backend-go/internal/domain/leave"
	"github.com/clinicops/rota-backend-go/internal/domain/roster"
	"github.com/clinicops/rota-backend-go/internal/pkg/clock"
)

type service struct {
	leaveRepo leave.LeaveRepository
	requests  leave.ShiftRequestRepository
	staff     roster.StaffRepository
}

func NewService(leaveRepo leave.LeaveRepository, requests leave.ShiftRequestRepository, staff roster.StaffRepository) leave.Service {
	return &service{
		leaveRepo: leaveRepo,
		requests:  requests,
		staff:     staff,
	}
}

func (s *service) GetLeave(ctx context.Context) (leave.Availability, error) {
	avail, err := s.leaveRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load leave: %w", err)
	}
	return avail, nil
}

func (s *service) GetLeaveForStaff(ctx context.Context, staffID string) ([]string, error) {
	if _, err := s.staff.GetByID(ctx, staffID); err != nil {
		return nil, err
	}
	return s.leaveRepo.GetByStaffID(ctx, staffID)
}

// SetLeave replaces one person's unavailability dates, deduplicated and in
// chronological order.
func (s *service) SetLeave(ctx context.Context, req leave.SetLeaveRequest) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.staff.GetByID(ctx, req.StaffID); err != nil {
		return nil, err
	}

	dates := normalizeDates(req.Dates)
	if len(dates) == 0 {
		if err := s.leaveRepo.DeleteForStaff(ctx, req.StaffID); err != nil {
			return nil, fmt.Errorf("clear leave: %w", err)
		}
		return []string{}, nil
	}
	if err := s.leaveRepo.SetForStaff(ctx, req.StaffID, dates); err != nil {
		return nil, fmt.Errorf("save leave: %w", err)
	}
	return dates, nil
}

func (s *service) GetShiftRequests(ctx context.Context, weekStart string) (leave.ShiftRequests, error) {
	weekStart, err := normalizeWeekStart(weekStart)
	if err != nil {
		return nil, err
	}
	requests, err := s.requests.GetForWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("load shift requests: %w", err)
	}
	return requests, nil
}

func (s *service) SetShiftRequests(ctx context.Context, req leave.SetShiftRequestsRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	weekStart, err := normalizeWeekStart(req.WeekStart)
	if err != nil {
		return err
	}
	if _, err := s.staff.GetByID(ctx, req.StaffID); err != nil {
		return err
	}
	if err := s.requests.SetForStaff(ctx, weekStart, req.StaffID, req.Requests); err != nil {
		return fmt.Errorf("save shift requests: %w", err)
	}
	return nil
}

func normalizeWeekStart(weekStart string) (string, error) {
	date, err := time.Parse(clock.DateLayout, weekStart)
	if err != nil {
		return "", leave.ErrInvalidWeekStart
	}
	return clock.WeekKey(date), nil
}

func normalizeDates(dates []string) []string {
	seen := make(map[string]bool, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out
}
