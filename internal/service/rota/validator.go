package rota

import (
	"fmt"

	"github.com/clinicops/rota-backend-go/internal/domain/branch"
	"github.com/clinicops/rota-backend-go/internal/domain/roster"
	"github.com/clinicops/rota-backend-go/internal/domain/schedule"
	"github.com/clinicops/rota-backend-go/internal/pkg/clock"
)

// Validate audits a week grid against the coverage and contractual rules.
// Hard staffing breaches become errors, advisory findings become warnings.
// The report's message order is stable for identical inputs.
func (e *Engine) Validate(grid schedule.Grid, staff []roster.StaffMember) schedule.ValidationReport {
	report := schedule.ValidationReport{
		Errors:   []string{},
		Warnings: []string{},
	}

	e.checkCoverage(grid, staff, &report)
	e.checkDoubleBookings(grid, staff, &report)
	e.checkRules(grid, staff, &report)

	return report
}

// checkCoverage verifies every open non-clinic branch has its nurse and
// reception slots filled. Clinics run nurse-only and are exempt; an empty
// clinic is a deliberate overflow decision, not a breach.
func (e *Engine) checkCoverage(grid schedule.Grid, staff []roster.StaffMember, report *schedule.ValidationReport) {
	for _, day := range clock.DayNames {
		for _, b := range branch.NonClinic(e.branches) {
			if !b.IsOpen(day) {
				continue
			}
			cell := grid.Cell(day, b.ID)

			if len(cell.Nurses) == 0 {
				report.Errors = append(report.Errors,
					fmt.Sprintf("%s has no nurse on %s", b.Name, day))
			} else if max := b.MaxNurses(day); len(cell.Nurses) > max {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("%s has %d nurses on %s (maximum %d)", b.Name, len(cell.Nurses), day, max))
			}

			if len(cell.Receptionists) == 0 {
				if hasAloneCapableNurse(cell, staff) {
					report.Warnings = append(report.Warnings,
						fmt.Sprintf("%s has no receptionist on %s (nurse working alone)", b.Name, day))
				} else {
					report.Errors = append(report.Errors,
						fmt.Sprintf("%s has no receptionist on %s and no assigned nurse can work alone", b.Name, day))
				}
			}
		}
	}
}

func hasAloneCapableNurse(cell schedule.Cell, staff []roster.StaffMember) bool {
	for _, a := range cell.Nurses {
		if s, ok := roster.ByID(staff, a.StaffID); ok && s.CanWorkAlone {
			return true
		}
	}
	return false
}

// checkDoubleBookings flags staff holding overlapping time windows on one
// day. Two same-day assignments whose windows do not overlap, such as a
// clinic morning plus an overflow afternoon, are legitimate split shifts.
func (e *Engine) checkDoubleBookings(grid schedule.Grid, staff []roster.StaffMember, report *schedule.ValidationReport) {
	for _, day := range clock.DayNames {
		for _, s := range staff {
			placed := grid.DayAssignments(s.ID, day, e.branches)
			if len(placed) < 2 {
				continue
			}
			for i := 0; i < len(placed); i++ {
				for j := i + 1; j < len(placed); j++ {
					first, second := placed[i], placed[j]
					start1, end1 := resolveWindow(e.branches, day, first)
					start2, end2 := resolveWindow(e.branches, day, second)
					if clock.Overlaps(start1, end1, start2, end2) {
						report.Errors = append(report.Errors,
							fmt.Sprintf("%s is double-booked on %s: %s %s-%s overlaps %s %s-%s",
								s.Name, day,
								branchName(e.branches, first.BranchID), start1, end1,
								branchName(e.branches, second.BranchID), start2, end2))
					}
				}
			}
		}
	}
}

func resolveWindow(branches []branch.Branch, day string, p schedule.PlacedAssignment) (string, string) {
	if b, ok := branch.ByID(branches, p.BranchID); ok {
		if hours, open := b.DayHours(day); open {
			return p.Assignment.Resolve(hours)
		}
	}
	return p.Assignment.ShiftStart, p.Assignment.ShiftEnd
}

func branchName(branches []branch.Branch, id string) string {
	if b, ok := branch.ByID(branches, id); ok {
		return b.Name
	}
	return id
}

// checkRules audits the declarative rule list: weekly minimums as warnings,
// broken both-days pairings as errors.
func (e *Engine) checkRules(grid schedule.Grid, staff []roster.StaffMember, report *schedule.ValidationReport) {
	for _, rule := range e.Rules(staff) {
		s, ok := roster.ByID(staff, rule.StaffID)
		if !ok {
			continue
		}
		switch rule.Kind {
		case roster.RuleMinimumWeeklyShifts:
			if count := grid.ShiftCount(s.ID); count < rule.MinShifts {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("%s has only %d shifts this week (minimum %d required)", s.Name, count, rule.MinShifts))
			}
		case roster.RuleBothDaysOrNeither:
			if len(rule.Days) != 2 {
				continue
			}
			day1, day2 := rule.Days[0], rule.Days[1]
			if grid.IsAssigned(s.ID, day1) != grid.IsAssigned(s.ID, day2) {
				report.Errors = append(report.Errors,
					fmt.Sprintf("%s must work both %s and %s or neither", s.Name, day1, day2))
			}
		}
	}
}
