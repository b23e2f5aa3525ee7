// Package roster implements staff management on top of the staff
// repository: validation, defaulting and response shaping.
package roster

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clinicops/rota-backend-go/internal/domain/roster"
)

type service struct {
	repo roster.StaffRepository
}

func NewService(repo roster.StaffRepository) roster.Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req roster.CreateStaffRequest) (roster.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return roster.StaffResponse{}, err
	}

	member := roster.StaffMember{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Role:               roster.Role(req.Role),
		EmploymentType:     roster.EmploymentType(req.EmploymentType),
		Branches:           req.Branches,
		LastResortBranches: req.LastResortBranches,
		MainBranch:         req.MainBranch,
		AlsoMainBranch:     req.AlsoMainBranch,
		AvailableDays:      req.AvailableDays,
		Priority:           req.Priority,
		CanWorkAlone:       req.CanWorkAlone,
		WeekendBothOrNone:  req.WeekendBothOrNone,
		MinShiftsPerWeek:   req.MinShiftsPerWeek,
		MonthlyHoursTarget: req.MonthlyHoursTarget,
		Color:              req.Color,
	}
	// The first listed branch doubles as the main branch unless one was
	// given explicitly.
	if member.MainBranch == "" && len(member.Branches) > 0 {
		member.MainBranch = member.Branches[0]
	}

	created, err := s.repo.Create(ctx, member)
	if err != nil {
		return roster.StaffResponse{}, fmt.Errorf("create staff member: %w", err)
	}
	return roster.ToResponse(created), nil
}

func (s *service) GetByID(ctx context.Context, id string) (roster.StaffResponse, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return roster.StaffResponse{}, err
	}
	return roster.ToResponse(member), nil
}

func (s *service) List(ctx context.Context) ([]roster.StaffResponse, error) {
	members, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	out := make([]roster.StaffResponse, 0, len(members))
	for _, m := range members {
		out = append(out, roster.ToResponse(m))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, req roster.UpdateStaffRequest) (roster.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return roster.StaffResponse{}, err
	}
	updated, err := s.repo.Update(ctx, req)
	if err != nil {
		return roster.StaffResponse{}, err
	}
	return roster.ToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
