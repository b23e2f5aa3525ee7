package schedule

import "context"

type GridRepository interface {
	// GetByWeek loads the grid stored under a week's Monday date. Returns
	// ErrGridNotFound when that week was never scheduled.
	GetByWeek(ctx context.Context, weekStart string) (Grid, error)
	// Save upserts the grid for a week.
	Save(ctx context.Context, weekStart string, grid Grid) error
	// GetRange loads every stored grid whose week key falls inside the
	// inclusive [from, to] date range, keyed by week start.
	GetRange(ctx context.Context, from, to string) (map[string]Grid, error)
}
