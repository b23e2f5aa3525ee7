// Package postgresql holds the pgx-backed repository implementations. Every
// repository resolves its querier through GetQuerier so calls compose with
// WithTransaction.
package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clinicops/rota-backend-go/internal/domain/branch"
	"github.com/clinicops/rota-backend-go/internal/pkg/database"
)

type branchRepositoryImpl struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepositoryImpl{db: db}
}

// GetAll implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetAll(ctx context.Context) ([]branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, color, is_clinic, hours
		FROM branches
		ORDER BY position ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}
	defer rows.Close()

	var branches []branch.Branch
	for rows.Next() {
		var b branch.Branch
		err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Color,
			&b.IsClinic,
			&b.Hours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return branches, nil
}

// GetByID implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, color, is_clinic, hours
		FROM branches
		WHERE id = $1
	`

	var b branch.Branch
	err := q.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Name,
		&b.Color,
		&b.IsClinic,
		&b.Hours,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return b, nil
}

// EnsureDefaults implements branch.BranchRepository. The seed runs in one
// transaction so a concurrent boot cannot insert a partial network.
func (r *branchRepositoryImpl) EnsureDefaults(ctx context.Context, defaults []branch.Branch) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM branches`).Scan(&count); err != nil {
			return fmt.Errorf("failed to count branches: %w", err)
		}
		if count > 0 {
			return nil
		}

		query := `
			INSERT INTO branches (id, name, color, is_clinic, hours, position, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		`
		for i, b := range defaults {
			if _, err := tx.Exec(ctx, query, b.ID, b.Name, b.Color, b.IsClinic, b.Hours, i); err != nil {
				return fmt.Errorf("failed to seed branch %s: %w", b.ID, err)
			}
		}
		return nil
	})
}
