package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clinicops/rota-backend-go/internal/domain/roster"
	"github.com/clinicops/rota-backend-go/internal/pkg/database"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) roster.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

const staffColumns = `
	id, name, role, employment_type,
	branches, last_resort_branches, main_branch, also_main_branch,
	available_days, priority, can_work_alone, weekend_both_or_none,
	min_shifts_per_week, monthly_hours_target, color,
	created_at, updated_at
`

func scanStaff(row pgx.Row) (roster.StaffMember, error) {
	var s roster.StaffMember
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Role,
		&s.EmploymentType,
		&s.Branches,
		&s.LastResortBranches,
		&s.MainBranch,
		&s.AlsoMainBranch,
		&s.AvailableDays,
		&s.Priority,
		&s.CanWorkAlone,
		&s.WeekendBothOrNone,
		&s.MinShiftsPerWeek,
		&s.MonthlyHoursTarget,
		&s.Color,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// Create implements roster.StaffRepository.
func (r *staffRepositoryImpl) Create(ctx context.Context, member roster.StaffMember) (roster.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff (
			id, name, role, employment_type,
			branches, last_resort_branches, main_branch, also_main_branch,
			available_days, priority, can_work_alone, weekend_both_or_none,
			min_shifts_per_week, monthly_hours_target, color,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING ` + staffColumns

	created, err := scanStaff(q.QueryRow(ctx, query,
		member.ID,
		member.Name,
		member.Role,
		member.EmploymentType,
		member.Branches,
		member.LastResortBranches,
		member.MainBranch,
		member.AlsoMainBranch,
		member.AvailableDays,
		member.Priority,
		member.CanWorkAlone,
		member.WeekendBothOrNone,
		member.MinShiftsPerWeek,
		member.MonthlyHoursTarget,
		member.Color,
	))
	if err != nil {
		return roster.StaffMember{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	return created, nil
}

// GetByID implements roster.StaffRepository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (roster.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`

	member, err := scanStaff(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roster.StaffMember{}, roster.ErrStaffNotFound
		}
		return roster.StaffMember{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return member, nil
}

// GetAll implements roster.StaffRepository. The creation-time ordering is
// what makes scheduling runs deterministic, so it must not change.
func (r *staffRepositoryImpl) GetAll(ctx context.Context) ([]roster.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY created_at ASC, id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	defer rows.Close()

	var staff []roster.StaffMember
	for rows.Next() {
		member, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		staff = append(staff, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return staff, nil
}

// Update implements roster.StaffRepository.
func (r *staffRepositoryImpl) Update(ctx context.Context, req roster.UpdateStaffRequest) (roster.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE staff SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	set := func(column string, value interface{}) {
		query += fmt.Sprintf(", %s = $%d", column, argIdx)
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.Role != nil {
		set("role", *req.Role)
	}
	if req.EmploymentType != nil {
		set("employment_type", *req.EmploymentType)
	}
	if req.Branches != nil {
		set("branches", *req.Branches)
	}
	if req.LastResortBranches != nil {
		set("last_resort_branches", *req.LastResortBranches)
	}
	if req.MainBranch != nil {
		set("main_branch", *req.MainBranch)
	}
	if req.AlsoMainBranch != nil {
		set("also_main_branch", *req.AlsoMainBranch)
	}
	if req.AvailableDays != nil {
		set("available_days", *req.AvailableDays)
	}
	if req.Priority != nil {
		set("priority", *req.Priority)
	}
	if req.CanWorkAlone != nil {
		set("can_work_alone", *req.CanWorkAlone)
	}
	if req.WeekendBothOrNone != nil {
		set("weekend_both_or_none", *req.WeekendBothOrNone)
	}
	if req.MinShiftsPerWeek != nil {
		set("min_shifts_per_week", *req.MinShiftsPerWeek)
	}
	if req.MonthlyHoursTarget != nil {
		set("monthly_hours_target", *req.MonthlyHoursTarget)
	}
	if req.Color != nil {
		set("color", *req.Color)
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING ", argIdx) + staffColumns
	args = append(args, req.ID)

	member, err := scanStaff(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roster.StaffMember{}, roster.ErrStaffNotFound
		}
		return roster.StaffMember{}, fmt.Errorf("failed to update staff member: %w", err)
	}

	return member, nil
}

// Delete implements roster.StaffRepository. Leave rows cascade via the
// schema's foreign key.
func (r *staffRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return roster.ErrStaffNotFound
	}

	return nil
}
