package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clinicops/rota-backend-go/internal/domain/leave"
	"github.com/clinicops/rota-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// GetAll implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetAll(ctx context.Context) (leave.Availability, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT staff_id, date::text
		FROM leave_dates
		ORDER BY staff_id, date ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave dates: %w", err)
	}
	defer rows.Close()

	avail := make(leave.Availability)
	for rows.Next() {
		var staffID, date string
		if err := rows.Scan(&staffID, &date); err != nil {
			return nil, fmt.Errorf("failed to scan leave date: %w", err)
		}
		avail[staffID] = append(avail[staffID], date)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return avail, nil
}

// GetByStaffID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByStaffID(ctx context.Context, staffID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date::text
		FROM leave_dates
		WHERE staff_id = $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave dates: %w", err)
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan leave date: %w", err)
		}
		dates = append(dates, date)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return dates, nil
}

// SetForStaff implements leave.LeaveRepository. The date set is replaced
// wholesale inside one transaction.
func (r *leaveRepositoryImpl) SetForStaff(ctx context.Context, staffID string, dates []string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM leave_dates WHERE staff_id = $1`, staffID); err != nil {
			return fmt.Errorf("failed to clear leave dates: %w", err)
		}
		for _, date := range dates {
			query := `INSERT INTO leave_dates (staff_id, date) VALUES ($1, $2) ON CONFLICT DO NOTHING`
			if _, err := tx.Exec(ctx, query, staffID, date); err != nil {
				return fmt.Errorf("failed to insert leave date: %w", err)
			}
		}
		return nil
	})
}

// DeleteForStaff implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) DeleteForStaff(ctx context.Context, staffID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM leave_dates WHERE staff_id = $1`, staffID); err != nil {
		return fmt.Errorf("failed to delete leave dates: %w", err)
	}

	return nil
}
