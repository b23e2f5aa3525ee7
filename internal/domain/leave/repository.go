package leave

import "context"

type LeaveRepository interface {
	// GetAll returns every stored unavailability date keyed by staff ID.
	GetAll(ctx context.Context) (Availability, error)
	GetByStaffID(ctx context.Context, staffID string) ([]string, error)
	// SetForStaff replaces the full unavailability date set of one person.
	SetForStaff(ctx context.Context, staffID string, dates []string) error
	DeleteForStaff(ctx context.Context, staffID string) error
}

type ShiftRequestRepository interface {
	// GetForWeek returns the requested day->branch map per staff member for
	// the week starting at weekStart (a Monday, "YYYY-MM-DD").
	GetForWeek(ctx context.Context, weekStart string) (ShiftRequests, error)
	// SetForStaff replaces one person's requests for a week.
	SetForStaff(ctx context.Context, weekStart, staffID string, requests map[string]string) error
}
