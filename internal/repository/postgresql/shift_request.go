package postgresql

import (
	"context"
	"fmt"

	"github.com/clinicops/rota-backend-go/internal/domain/leave"
	"github.com/clinicops/rota-backend-go/internal/pkg/database"
)

type shiftRequestRepositoryImpl struct {
	db *database.DB
}

func NewShiftRequestRepository(db *database.DB) leave.ShiftRequestRepository {
	return &shiftRequestRepositoryImpl{db: db}
}

// GetForWeek implements leave.ShiftRequestRepository.
func (r *shiftRequestRepositoryImpl) GetForWeek(ctx context.Context, weekStart string) (leave.ShiftRequests, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT staff_id, requests
		FROM shift_requests
		WHERE week_start = $1
	`

	rows, err := q.Query(ctx, query, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift requests: %w", err)
	}
	defer rows.Close()

	requests := make(leave.ShiftRequests)
	for rows.Next() {
		var staffID string
		var dayBranches map[string]string
		if err := rows.Scan(&staffID, &dayBranches); err != nil {
			return nil, fmt.Errorf("failed to scan shift request: %w", err)
		}
		requests[staffID] = dayBranches
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

// SetForStaff implements leave.ShiftRequestRepository. An empty request map
// removes the row.
func (r *shiftRequestRepositoryImpl) SetForStaff(ctx context.Context, weekStart, staffID string, requests map[string]string) error {
	q := GetQuerier(ctx, r.db)

	if len(requests) == 0 {
		query := `DELETE FROM shift_requests WHERE week_start = $1 AND staff_id = $2`
		if _, err := q.Exec(ctx, query, weekStart, staffID); err != nil {
			return fmt.Errorf("failed to delete shift requests: %w", err)
		}
		return nil
	}

	query := `
		INSERT INTO shift_requests (week_start, staff_id, requests, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (week_start, staff_id)
		DO UPDATE SET requests = EXCLUDED.requests, updated_at = NOW()
	`
	if _, err := q.Exec(ctx, query, weekStart, staffID, requests); err != nil {
		return fmt.Errorf("failed to save shift requests: %w", err)
	}

	return nil
}
