package schedule

import "context"

type Service interface {
	GetWeek(ctx context.Context, weekStart string) (WeekResponse, error)
	// AutoSchedule rebuilds the week from the roster, leave and shift
	// requests, carrying forward locked assignments, then persists and
	// returns the result with its validation report.
	AutoSchedule(ctx context.Context, weekStart string) (WeekResponse, error)
	// ClearWeek removes all unlocked assignments for the week.
	ClearWeek(ctx context.Context, weekStart string) (WeekResponse, error)
	Validation(ctx context.Context, weekStart string) (ValidationReport, error)

	WeeklyHours(ctx context.Context, weekStart string) (HoursResponse, error)
	PayCycleHours(ctx context.Context, cycleStart string) (HoursResponse, error)

	PlaceAssignment(ctx context.Context, req PlaceAssignmentRequest) (WeekResponse, error)
	RemoveAssignment(ctx context.Context, req RemoveAssignmentRequest) (WeekResponse, error)
	ToggleLock(ctx context.Context, req ToggleLockRequest) (WeekResponse, error)
	MoveAssignment(ctx context.Context, req MoveAssignmentRequest) (WeekResponse, error)

	// TimeSlots lists the non-conflicting morning/afternoon/full-day
	// windows a staff member could take at a branch on a day.
	TimeSlots(ctx context.Context, weekStart, day, branchID, staffID string) ([]TimeSlot, error)
}
