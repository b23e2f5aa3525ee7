package rota

import (
	"fmt"
	"strconv"

	"github.com/clinicops/rota-backend-go/internal/domain/branch"
	"github.com/clinicops/rota-backend-go/internal/domain/roster"
	"github.com/clinicops/rota-backend-go/internal/domain/schedule"
	"github.com/clinicops/rota-backend-go/internal/pkg/clock"
)

// TimeSlots offers the assignable windows for placing a staff member at a
// branch on a day: full day plus the morning and afternoon halves around
// the rounded midpoint. Windows that would overlap the member's existing
// shifts at other branches are filtered out; assignments at the target
// branch itself are ignored since a manual placement replaces them.
func (e *Engine) TimeSlots(grid schedule.Grid, member roster.StaffMember, day, branchID string) []schedule.TimeSlot {
	b, ok := branch.ByID(e.branches, branchID)
	if !ok {
		return nil
	}
	hours, open := b.DayHours(day)
	if !open {
		return nil
	}

	mid := clock.MidpointSplit(hours.Open, hours.Close)
	candidates := []schedule.TimeSlot{
		{Label: fmt.Sprintf("Full day (%s-%s)", shortHour(hours.Open), shortHour(hours.Close)), Start: hours.Open, End: hours.Close},
		{Label: fmt.Sprintf("Morning (%s-%s)", shortHour(hours.Open), shortHour(mid)), Start: hours.Open, End: mid},
		{Label: fmt.Sprintf("Afternoon (%s-%s)", shortHour(mid), shortHour(hours.Close)), Start: mid, End: hours.Close},
	}

	existing := grid.DayAssignments(member.ID, day, e.branches)
	var out []schedule.TimeSlot
	for _, slot := range candidates {
		conflict := false
		for _, p := range existing {
			if p.BranchID == branchID {
				continue
			}
			start, end := resolveWindow(e.branches, day, p)
			if clock.Overlaps(slot.Start, slot.End, start, end) {
				conflict = true
				break
			}
		}
		if !conflict {
			out = append(out, slot)
		}
	}
	return out
}

// shortHour renders "09:00" as "9" and "13:30" as "13:30" for slot labels.
func shortHour(hhmm string) string {
	minutes := clock.ToMinutes(hhmm)
	if minutes%60 == 0 {
		return strconv.Itoa(minutes / 60)
	}
	return hhmm
}
