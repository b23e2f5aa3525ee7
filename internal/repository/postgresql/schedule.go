package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clinicops/rota-backend-go/internal/domain/schedule"
	"github.com/clinicops/rota-backend-go/internal/pkg/database"
)

type gridRepositoryImpl struct {
	db *database.DB
}

func NewGridRepository(db *database.DB) schedule.GridRepository {
	return &gridRepositoryImpl{db: db}
}

// GetByWeek implements schedule.GridRepository.
func (r *gridRepositoryImpl) GetByWeek(ctx context.Context, weekStart string) (schedule.Grid, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT grid
		FROM schedule_weeks
		WHERE week_start = $1
	`

	var grid schedule.Grid
	err := q.QueryRow(ctx, query, weekStart).Scan(&grid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrGridNotFound
		}
		return nil, fmt.Errorf("failed to get schedule week: %w", err)
	}

	return grid, nil
}

// Save implements schedule.GridRepository.
func (r *gridRepositoryImpl) Save(ctx context.Context, weekStart string, grid schedule.Grid) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_weeks (week_start, grid, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (week_start)
		DO UPDATE SET grid = EXCLUDED.grid, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, weekStart, grid); err != nil {
		return fmt.Errorf("failed to save schedule week: %w", err)
	}

	return nil
}

// GetRange implements schedule.GridRepository.
func (r *gridRepositoryImpl) GetRange(ctx context.Context, from, to string) (map[string]schedule.Grid, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT week_start::text, grid
		FROM schedule_weeks
		WHERE week_start >= $1 AND week_start <= $2
		ORDER BY week_start ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule weeks: %w", err)
	}
	defer rows.Close()

	grids := make(map[string]schedule.Grid)
	for rows.Next() {
		var weekStart string
		var grid schedule.Grid
		if err := rows.Scan(&weekStart, &grid); err != nil {
			return nil, fmt.Errorf("failed to scan schedule week: %w", err)
		}
		grids[weekStart] = grid
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return grids, nil
}
