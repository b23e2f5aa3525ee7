// Package rota implements the scheduling core: the multi-pass greedy
// auto-scheduler, the grid validator and the hours aggregation. Everything
// in this package is a pure transformation over in-memory snapshots; the
// orchestrating service wires it to storage and HTTP.
package rota

import (
	"sort"

	"github.com/clinicops/rota-backend-go/internal/domain/branch"
	"github.com/clinicops/rota-backend-go/internal/domain/leave"
	"github.com/clinicops/rota-backend-go/internal/domain/roster"
	"github.com/clinicops/rota-backend-go/internal/domain/schedule"
	"github.com/clinicops/rota-backend-go/internal/pkg/clock"
)

// Engine carries the static reference data every scheduling pass consults:
// the branch network and the configured branch-pairing rules. Per-person
// rules are derived from the roster on each run.
type Engine struct {
	branches    []branch.Branch
	staticRules []roster.SpecialRule
}

func NewEngine(branches []branch.Branch, staticRules []roster.SpecialRule) *Engine {
	return &Engine{branches: branches, staticRules: staticRules}
}

// Branches exposes the engine's reference branch list.
func (e *Engine) Branches() []branch.Branch {
	return e.branches
}

// Rules returns the combined rule list for a roster: derived per-person
// rules first, then the configured static rules.
func (e *Engine) Rules(staff []roster.StaffMember) []roster.SpecialRule {
	return append(roster.DeriveRules(staff), e.staticRules...)
}

// AutoSchedule produces a full week's grid from the roster, the prior
// week's locked assignments, leave data and shift requests. It is
// deterministic for identical inputs and never mutates them. Unsatisfiable
// constraints leave gaps for the validator to report; there is no failure
// path.
func (e *Engine) AutoSchedule(staff []roster.StaffMember, prior schedule.Grid, avail leave.Availability, requests leave.ShiftRequests, weekStart string) schedule.Grid {
	r := &run{
		engine:   e,
		staff:    staff,
		avail:    avail,
		requests: requests,
		grid:     schedule.SeedFromLocked(prior, e.branches),
		dates:    dateLookup(weekStart),
	}
	rules := e.Rules(staff)
	r.markBothOrNeither(rules)

	r.placePriorityStaff()
	r.applyPersonRules(rules)
	r.fillNurseGaps()
	r.fillReceptionistGaps()
	r.applyMinimumShifts(rules)
	r.applySplitOverflow(rules)
	r.fillClinicOverflow(rules)

	return r.grid
}

// run is the mutable state of one scheduling invocation.
type run struct {
	engine   *Engine
	staff    []roster.StaffMember
	avail    leave.Availability
	requests leave.ShiftRequests
	grid     schedule.Grid
	dates    map[string]string
	// staff under a both-days-or-neither rule are placed only by that
	// rule, never by general gap-fill
	bothOrNeither map[string]bool
}

// dateLookup maps weekday names to ISO dates for the scheduled week. A
// malformed week start degrades to day names, which simply never match any
// leave date.
func dateLookup(weekStart string) map[string]string {
	lookup := make(map[string]string, len(clock.DayNames))
	dates := clock.WeekDates(weekStart)
	for i, day := range clock.DayNames {
		if dates != nil {
			lookup[day] = dates[i]
		} else {
			lookup[day] = day
		}
	}
	return lookup
}

func (r *run) markBothOrNeither(rules []roster.SpecialRule) {
	r.bothOrNeither = make(map[string]bool)
	for _, rule := range rules {
		if rule.Kind == roster.RuleBothDaysOrNeither {
			r.bothOrNeither[rule.StaffID] = true
		}
	}
}

// available checks both the member's day-of-week restriction and their
// leave dates.
func (r *run) available(s roster.StaffMember, day string) bool {
	return s.WorksDay(day) && !r.avail.IsUnavailable(s.ID, r.dates[day])
}

func (r *run) branchByID(id string) (branch.Branch, bool) {
	return branch.ByID(r.engine.branches, id)
}

// assign places a full-day assignment, returning true when a slot was
// taken. Capacity, duplicates and clinic rules are enforced by the grid.
func (r *run) assign(s roster.StaffMember, branchID, day string) bool {
	return r.assignTimed(s, branchID, day, "", "")
}

func (r *run) assignTimed(s roster.StaffMember, branchID, day, start, end string) bool {
	b, ok := r.branchByID(branchID)
	if !ok {
		return false
	}
	a := schedule.Assignment{StaffID: s.ID, Name: s.Name, ShiftStart: start, ShiftEnd: end}
	return r.grid.Place(b, day, s.Role, a) == nil
}

func (r *run) needsNurse(branchID, day string) bool {
	b, ok := r.branchByID(branchID)
	if !ok || !b.IsOpen(day) {
		return false
	}
	return len(r.grid.Cell(day, branchID).Nurses) < b.MaxNurses(day)
}

// needsReceptionist reports whether the branch is uncovered on the
// reception side: open, not a clinic, no receptionist yet and no assigned
// nurse who can run the branch alone.
func (r *run) needsReceptionist(branchID, day string) bool {
	b, ok := r.branchByID(branchID)
	if !ok || !b.IsOpen(day) || b.IsClinic {
		return false
	}
	cell := r.grid.Cell(day, branchID)
	if len(cell.Receptionists) > 0 {
		return false
	}
	for _, a := range cell.Nurses {
		if s, ok := roster.ByID(r.staff, a.StaffID); ok && s.CanWorkAlone {
			return false
		}
	}
	return true
}

func (r *run) roleNeeds(role roster.Role, branchID, day string) bool {
	if role == roster.RoleReceptionist {
		return r.needsReceptionist(branchID, day)
	}
	return r.needsNurse(branchID, day)
}

// placePriorityStaff honors explicit shift requests first, then falls back
// through the member's branch preference tiers. Clinic branches are skipped
// in the fallback tiers; they are filled as late-stage overflow only.
func (r *run) placePriorityStaff() {
	for _, s := range r.staff {
		if !s.Priority || !s.IsScheduleRole() {
			continue
		}
		for _, day := range clock.DayNames {
			if !r.available(s, day) || r.grid.IsAssigned(s.ID, day) {
				continue
			}

			if requested := r.requests.For(s.ID, day); requested != "" {
				if b, ok := r.branchByID(requested); ok && b.IsOpen(day) {
					if r.assign(s, requested, day) {
						continue
					}
				}
			}

			if s.MainBranch != "" {
				if b, ok := r.branchByID(s.MainBranch); ok && b.IsOpen(day) {
					if r.assign(s, s.MainBranch, day) {
						continue
					}
				}
			}

			if s.AlsoMainBranch != "" {
				if b, ok := r.branchByID(s.AlsoMainBranch); ok && b.IsOpen(day) && !b.IsClinic {
					if r.assign(s, s.AlsoMainBranch, day) {
						continue
					}
				}
			}

			for _, branchID := range s.Branches {
				if branchID == s.MainBranch || branchID == s.AlsoMainBranch {
					continue
				}
				b, ok := r.branchByID(branchID)
				if !ok || !b.IsOpen(day) || b.IsClinic {
					continue
				}
				if r.needsNurse(branchID, day) && r.assign(s, branchID, day) {
					break
				}
			}
		}
	}
}

// applyPersonRules runs the fixed-day pins and the both-days-or-neither
// placements, in rule-list order.
func (r *run) applyPersonRules(rules []roster.SpecialRule) {
	for _, rule := range rules {
		switch rule.Kind {
		case roster.RuleFixedDayBranch:
			r.applyFixedDayBranch(rule)
		case roster.RuleBothDaysOrNeither:
			r.applyBothDaysOrNeither(rule)
		}
	}
}

func (r *run) applyFixedDayBranch(rule roster.SpecialRule) {
	s, ok := roster.ByID(r.staff, rule.StaffID)
	if !ok {
		return
	}
	for _, day := range rule.Days {
		if r.available(s, day) && !r.grid.IsAssigned(s.ID, day) {
			r.assign(s, rule.BranchID, day)
		}
	}
}

// applyBothDaysOrNeither places the member on both configured days at the
// same branch, or not at all. The first allowed branch that is uncovered on
// either day wins.
func (r *run) applyBothDaysOrNeither(rule roster.SpecialRule) {
	s, ok := roster.ByID(r.staff, rule.StaffID)
	if !ok || len(rule.Days) != 2 {
		return
	}
	day1, day2 := rule.Days[0], rule.Days[1]
	if !r.available(s, day1) || !r.available(s, day2) {
		return
	}
	if r.grid.IsAssigned(s.ID, day1) || r.grid.IsAssigned(s.ID, day2) {
		return
	}
	for _, b := range branch.NonClinic(r.engine.branches) {
		if !s.HasRegularBranch(b.ID) {
			continue
		}
		if !r.roleNeeds(s.Role, b.ID, day1) && !r.roleNeeds(s.Role, b.ID, day2) {
			continue
		}
		r.assign(s, b.ID, day1)
		r.assign(s, b.ID, day2)
		return
	}
}

// fillNurseGaps covers every remaining nurse slot at non-clinic branches.
// Candidates are ranked by main-branch match, then regular over last-resort
// membership, then fewest days worked so far to spread load. Cells with a
// raised nurse cap take candidates until the cap is met.
func (r *run) fillNurseGaps() {
	for _, day := range clock.DayNames {
		for _, b := range branch.NonClinic(r.engine.branches) {
			if !r.needsNurse(b.ID, day) {
				continue
			}

			var candidates []roster.StaffMember
			for _, s := range r.staff {
				if s.Role != roster.RoleNurse || s.Priority || r.bothOrNeither[s.ID] {
					continue
				}
				if !r.available(s, day) || r.grid.IsAssigned(s.ID, day) {
					continue
				}
				if !s.MayWork(b.ID) {
					continue
				}
				candidates = append(candidates, s)
			}

			sort.SliceStable(candidates, func(i, j int) bool {
				a, c := candidates[i], candidates[j]
				if (a.MainBranch == b.ID) != (c.MainBranch == b.ID) {
					return a.MainBranch == b.ID
				}
				if a.HasRegularBranch(b.ID) != c.HasRegularBranch(b.ID) {
					return a.HasRegularBranch(b.ID)
				}
				return r.grid.DaysWorked(a.ID) < r.grid.DaysWorked(c.ID)
			})

			for _, c := range candidates {
				if !r.needsNurse(b.ID, day) {
					break
				}
				r.assign(c, b.ID, day)
			}
		}
	}
}

// fillReceptionistGaps mirrors the nurse pass for reception slots. A cell
// whose assigned nurse can work alone counts as covered here; only the
// minimum-shift pass places receptionists into such cells. Permanent staff
// rank ahead of part-timers and locums so they accumulate toward their
// monthly hours targets.
func (r *run) fillReceptionistGaps() {
	for _, day := range clock.DayNames {
		for _, b := range branch.NonClinic(r.engine.branches) {
			if !r.needsReceptionist(b.ID, day) {
				continue
			}

			var candidates []roster.StaffMember
			for _, s := range r.staff {
				if s.Role != roster.RoleReceptionist || r.bothOrNeither[s.ID] {
					continue
				}
				if !r.available(s, day) || r.grid.IsAssigned(s.ID, day) {
					continue
				}
				if !s.HasRegularBranch(b.ID) {
					continue
				}
				candidates = append(candidates, s)
			}

			sort.SliceStable(candidates, func(i, j int) bool {
				a, c := candidates[i], candidates[j]
				if (a.MainBranch == b.ID) != (c.MainBranch == b.ID) {
					return a.MainBranch == b.ID
				}
				aPerm := a.EmploymentType == roster.EmploymentPermanent
				cPerm := c.EmploymentType == roster.EmploymentPermanent
				if aPerm != cPerm {
					return aPerm
				}
				return r.grid.DaysWorked(a.ID) < r.grid.DaysWorked(c.ID)
			})

			if len(candidates) > 0 {
				r.assign(candidates[0], b.ID, day)
			}
		}
	}
}

// applyMinimumShifts tops up staff with a contractual weekly minimum. The
// first sweep respects coverage need; the second assigns into any open
// allowed branch regardless of need. Over-staffing a branch to honor the
// minimum is intentional.
func (r *run) applyMinimumShifts(rules []roster.SpecialRule) {
	for _, rule := range rules {
		if rule.Kind != roster.RuleMinimumWeeklyShifts {
			continue
		}
		s, ok := roster.ByID(r.staff, rule.StaffID)
		if !ok {
			continue
		}

		count := r.grid.DaysWorked(s.ID)
		for _, requireNeed := range []bool{true, false} {
			for _, day := range clock.DayNames {
				if count >= rule.MinShifts {
					break
				}
				if !r.available(s, day) || r.grid.IsAssigned(s.ID, day) {
					continue
				}
				for _, b := range branch.NonClinic(r.engine.branches) {
					if !b.IsOpen(day) || !s.HasRegularBranch(b.ID) {
						continue
					}
					if requireNeed && !r.roleNeeds(s.Role, b.ID, day) {
						continue
					}
					if r.assign(s, b.ID, day) {
						count++
						break
					}
				}
			}
		}
	}
}

// applySplitOverflow handles the weekly busy day: when the clinic is open
// but unstaffed, one nurse's day is split between the clinic morning and
// the overflow branch afternoon.
func (r *run) applySplitOverflow(rules []roster.SpecialRule) {
	for _, rule := range rules {
		if rule.Kind != roster.RuleSplitShiftOverflow {
			continue
		}
		r.splitOverflowDay(rule)
	}
}

func (r *run) splitOverflowDay(rule roster.SpecialRule) {
	day := rule.Day
	clinicBranch, ok := r.branchByID(rule.ClinicBranchID)
	if !ok || !clinicBranch.IsOpen(day) {
		return
	}
	overflowBranch, ok := r.branchByID(rule.OverflowBranchID)
	if !ok || !overflowBranch.IsOpen(day) {
		return
	}
	if !r.needsNurse(clinicBranch.ID, day) {
		return
	}

	clinicHours, _ := clinicBranch.DayHours(day)
	overflowHours, _ := overflowBranch.DayHours(day)
	split := clinicHours.Close

	// Prefer splitting a nurse already working the overflow branch full
	// day, ideally one whose second home is the clinic.
	cell := r.grid.Cell(day, overflowBranch.ID)
	var movable []roster.StaffMember
	for _, a := range cell.Nurses {
		if a.Locked || !a.FullDay() {
			continue
		}
		s, ok := roster.ByID(r.staff, a.StaffID)
		if !ok || !s.HasRegularBranch(clinicBranch.ID) {
			continue
		}
		movable = append(movable, s)
	}
	sort.SliceStable(movable, func(i, j int) bool {
		return (movable[i].AlsoMainBranch == clinicBranch.ID) && (movable[j].AlsoMainBranch != clinicBranch.ID)
	})

	if len(movable) > 0 {
		mover := movable[0]
		r.grid.Remove(day, overflowBranch.ID, roster.RoleNurse, mover.ID)
		r.assignTimed(mover, clinicBranch.ID, day, clinicHours.Open, clinicHours.Close)
		r.assignTimed(mover, overflowBranch.ID, day, split, overflowHours.Close)

		// Any full-day nurse still at the overflow branch takes the
		// complementary morning half.
		r.grid.SetShifts(day, overflowBranch.ID, roster.RoleNurse, overflowHours.Open, split)
		return
	}

	// Fall back to an unassigned clinic-eligible nurse, extending them
	// into the overflow afternoon when there is still room.
	var fresh []roster.StaffMember
	for _, s := range r.staff {
		if s.Role != roster.RoleNurse || !r.available(s, day) || r.grid.IsAssigned(s.ID, day) {
			continue
		}
		if !s.HasRegularBranch(clinicBranch.ID) {
			continue
		}
		fresh = append(fresh, s)
	}
	sort.SliceStable(fresh, func(i, j int) bool {
		return (fresh[i].AlsoMainBranch == clinicBranch.ID) && (fresh[j].AlsoMainBranch != clinicBranch.ID)
	})
	if len(fresh) == 0 {
		return
	}
	s := fresh[0]
	r.assignTimed(s, clinicBranch.ID, day, clinicHours.Open, clinicHours.Close)
	if r.needsNurse(overflowBranch.ID, day) && s.MayWork(overflowBranch.ID) {
		r.assignTimed(s, overflowBranch.ID, day, split, overflowHours.Close)
	}
}

// fillClinicOverflow staffs clinics on ordinary days, but only once every
// non-clinic branch's nurse quota is met; the clinic is pure overflow.
// Days handled by a split-shift rule are skipped here.
func (r *run) fillClinicOverflow(rules []roster.SpecialRule) {
	splitDays := make(map[string]bool)
	for _, rule := range rules {
		if rule.Kind == roster.RuleSplitShiftOverflow {
			splitDays[rule.Day+"/"+rule.ClinicBranchID] = true
		}
	}

	for _, c := range branch.Clinics(r.engine.branches) {
		for _, day := range clock.DayNames {
			if splitDays[day+"/"+c.ID] || !c.IsOpen(day) {
				continue
			}

			allCovered := true
			for _, b := range branch.NonClinic(r.engine.branches) {
				if r.needsNurse(b.ID, day) {
					allCovered = false
					break
				}
			}
			if !allCovered || !r.needsNurse(c.ID, day) {
				continue
			}

			var candidates []roster.StaffMember
			for _, s := range r.staff {
				if s.Role != roster.RoleNurse || !r.available(s, day) || r.grid.IsAssigned(s.ID, day) {
					continue
				}
				if !s.HasRegularBranch(c.ID) {
					continue
				}
				candidates = append(candidates, s)
			}
			sort.SliceStable(candidates, func(i, j int) bool {
				return (candidates[i].AlsoMainBranch == c.ID) && (candidates[j].AlsoMainBranch != c.ID)
			})
			if len(candidates) > 0 {
				r.assign(candidates[0], c.ID, day)
			}
		}
	}
}
