package branch

import "context"

type BranchRepository interface {
	GetAll(ctx context.Context) ([]Branch, error)
	GetByID(ctx context.Context, id string) (Branch, error)
	// EnsureDefaults inserts the given branches when the table is empty.
	// Existing rows always win; the defaults are a first-run seed only.
	EnsureDefaults(ctx context.Context, defaults []Branch) error
}
