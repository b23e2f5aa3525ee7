package rota

import (
	"sort"
	"time"

	"github.com/clinicops/rota-backend-go/internal/domain/branch"
	"github.com/clinicops/rota-backend-go/internal/domain/roster"
	"github.com/clinicops/rota-backend-go/internal/domain/schedule"
	"github.com/clinicops/rota-backend-go/internal/pkg/clock"
)

// WeeklyHours sums every staff member's worked time over one week grid.
// Partial-day assignments count their explicit window; full-day assignments
// count the branch's configured shift hours. Every roster member gets an
// entry, zeroed when unscheduled, so timesheet views stay complete.
// Assignments referencing staff no longer on the roster are skipped.
func (e *Engine) WeeklyHours(grid schedule.Grid, staff []roster.StaffMember) map[string]schedule.StaffHours {
	result := make(map[string]schedule.StaffHours, len(staff))
	for _, s := range staff {
		result[s.ID] = newStaffHours(s)
	}

	for _, day := range clock.DayNames {
		for _, b := range e.branches {
			cell := grid.Cell(day, b.ID)
			for _, a := range append(append([]schedule.Assignment(nil), cell.Nurses...), cell.Receptionists...) {
				entry, ok := result[a.StaffID]
				if !ok {
					continue
				}
				hours := assignmentHours(a, b, day)
				entry.TotalShifts++
				entry.TotalHours += hours
				entry.Details = append(entry.Details, schedule.ShiftDetail{
					Day:      day,
					BranchID: b.ID,
					Hours:    hours,
				})
				result[a.StaffID] = entry
			}
		}
	}

	return result
}

// PayCycleHours aggregates worked time over the pay cycle starting at
// cycleStart (a "YYYY-MM-25" date), spanning every stored week that
// overlaps it. Days outside the cycle window are excluded even when their
// week grid is loaded. The lunch break is deducted once per person per
// worked day; when a day spans branches with different lunch values the
// smallest deduction applies. Support staff appear in the result with zero
// hours so the payroll export lists the whole payroll, and shifts of staff
// since removed from the roster stay in the totals under the assignment's
// recorded name so departed employees still get paid for worked time.
func (e *Engine) PayCycleHours(grids map[string]schedule.Grid, staff []roster.StaffMember, cycleStart string) (map[string]schedule.StaffHours, error) {
	start, end, err := clock.PayCycleRange(cycleStart)
	if err != nil {
		return nil, err
	}
	weekKeys, err := clock.WeekKeysForPayCycle(cycleStart)
	if err != nil {
		return nil, err
	}

	result := make(map[string]schedule.StaffHours)
	for _, s := range staff {
		if s.Role == roster.RoleSupport {
			result[s.ID] = newStaffHours(s)
		}
	}

	for _, weekKey := range weekKeys {
		grid, ok := grids[weekKey]
		if !ok {
			continue
		}
		weekStart, parseErr := time.Parse(clock.DateLayout, weekKey)
		if parseErr != nil {
			continue
		}

		for dayIdx, day := range clock.DayNames {
			date := weekStart.AddDate(0, 0, dayIdx)
			if date.Before(start) || date.After(end) {
				continue
			}
			e.accumulateDay(grid, day, staff, result)
		}
	}

	return result, nil
}

// accumulateDay folds one day of one grid into the running totals, applying
// the per-day lunch deduction.
func (e *Engine) accumulateDay(grid schedule.Grid, day string, staff []roster.StaffMember, result map[string]schedule.StaffHours) {
	type dayWork struct {
		name     string
		hours    float64
		shifts   int
		minLunch float64
	}
	worked := make(map[string]dayWork)

	for _, b := range e.branches {
		hours, open := b.DayHours(day)
		if !open {
			continue
		}
		cell := grid.Cell(day, b.ID)
		for _, a := range append(append([]schedule.Assignment(nil), cell.Nurses...), cell.Receptionists...) {
			w, seen := worked[a.StaffID]
			if !seen {
				w.name = a.Name
			}
			if !seen || hours.Lunch < w.minLunch {
				w.minLunch = hours.Lunch
			}
			w.hours += assignmentHours(a, b, day)
			w.shifts++
			worked[a.StaffID] = w
		}
	}

	// Fold in roster order so map iteration never touches the output.
	for _, s := range staff {
		w, ok := worked[s.ID]
		if !ok {
			continue
		}
		delete(worked, s.ID)
		entry, ok := result[s.ID]
		if !ok {
			entry = newStaffHours(s)
		}
		entry.TotalShifts += w.shifts
		entry.TotalHours += w.hours - w.minLunch
		result[s.ID] = entry
	}

	// Leftovers belong to staff no longer on the roster; carry them under
	// the name recorded on the assignment.
	ids := make([]string, 0, len(worked))
	for id := range worked {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		w := worked[id]
		entry, ok := result[id]
		if !ok {
			entry = schedule.StaffHours{StaffID: id, Name: w.name, Role: "unknown"}
		}
		entry.TotalShifts += w.shifts
		entry.TotalHours += w.hours - w.minLunch
		result[id] = entry
	}
}

func newStaffHours(s roster.StaffMember) schedule.StaffHours {
	return schedule.StaffHours{
		StaffID:        s.ID,
		Name:           s.Name,
		Role:           string(s.Role),
		EmploymentType: string(s.EmploymentType),
	}
}

// assignmentHours returns the counted hours of one assignment: the explicit
// window when present, otherwise the branch's configured full-day value.
func assignmentHours(a schedule.Assignment, b branch.Branch, day string) float64 {
	if a.FullDay() {
		return b.ShiftHours(day)
	}
	return clock.HoursBetween(a.ShiftStart, a.ShiftEnd)
}
