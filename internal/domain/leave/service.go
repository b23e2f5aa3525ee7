package leave

import "context"

type Service interface {
	// GetLeave returns every stored unavailability date keyed by staff ID.
	GetLeave(ctx context.Context) (Availability, error)
	GetLeaveForStaff(ctx context.Context, staffID string) ([]string, error)
	// SetLeave replaces one person's full unavailability date set.
	SetLeave(ctx context.Context, req SetLeaveRequest) ([]string, error)

	GetShiftRequests(ctx context.Context, weekStart string) (ShiftRequests, error)
	SetShiftRequests(ctx context.Context, req SetShiftRequestsRequest) error
}
