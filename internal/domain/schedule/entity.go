package schedule

import (
	"github.com/clinicops/rota-backend-go/internal/domain/branch"
	"github.com/clinicops/rota-backend-go/internal/domain/roster"
	"github.com/clinicops/rota-backend-go/internal/pkg/clock"
)

// Assignment is one staff member occupying one slot of a (day, branch) cell.
// ShiftStart/ShiftEnd are set only for partial-day shifts; both empty means
// the full branch operating hours for that day. All three flags must survive
// a save/reload cycle, which is why the JSON tags live on the entity.
type Assignment struct {
	StaffID    string `json:"staff_id"`
	Name       string `json:"name"` // denormalized display snapshot
	Locked     bool   `json:"locked,omitempty"`
	ShiftStart string `json:"shift_start,omitempty"`
	ShiftEnd   string `json:"shift_end,omitempty"`
}

// FullDay reports whether the assignment covers the branch's whole operating
// day rather than an explicit time window.
func (a Assignment) FullDay() bool {
	return a.ShiftStart == "" && a.ShiftEnd == ""
}

// Resolve returns the effective start and end of the assignment given the
// branch hours of its day.
func (a Assignment) Resolve(hours branch.DayHours) (string, string) {
	start, end := a.ShiftStart, a.ShiftEnd
	if start == "" {
		start = hours.Open
	}
	if end == "" {
		end = hours.Close
	}
	return start, end
}

// Cell holds the assignments of one branch on one day.
type Cell struct {
	Nurses        []Assignment `json:"nurses"`
	Receptionists []Assignment `json:"receptionists"`
}

// Role returns the slot list for a role. Support roles have no slots.
func (c Cell) Role(role roster.Role) []Assignment {
	switch role {
	case roster.RoleNurse:
		return c.Nurses
	case roster.RoleReceptionist:
		return c.Receptionists
	}
	return nil
}

func (c Cell) has(role roster.Role, staffID string) bool {
	for _, a := range c.Role(role) {
		if a.StaffID == staffID {
			return true
		}
	}
	return false
}

// Grid is a full week of assignments: day name -> branch ID -> cell. One
// grid is persisted per calendar week, keyed by that week's Monday.
type Grid map[string]map[string]Cell

// NewGrid builds an empty grid with a cell for every (day, branch) pair,
// open or not. Closed days simply never receive assignments.
func NewGrid(branches []branch.Branch) Grid {
	g := make(Grid, len(clock.DayNames))
	for _, day := range clock.DayNames {
		g[day] = make(map[string]Cell, len(branches))
		for _, b := range branches {
			g[day][b.ID] = Cell{}
		}
	}
	return g
}

// Clone deep-copies the grid so callers can edit without aliasing the
// stored value.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for day, row := range g {
		out[day] = make(map[string]Cell, len(row))
		for branchID, cell := range row {
			out[day][branchID] = Cell{
				Nurses:        append([]Assignment(nil), cell.Nurses...),
				Receptionists: append([]Assignment(nil), cell.Receptionists...),
			}
		}
	}
	return out
}

// Cell returns the cell for a (day, branch), zero-valued when absent.
func (g Grid) Cell(day, branchID string) Cell {
	return g[day][branchID]
}

func (g Grid) setCell(day, branchID string, cell Cell) {
	if g[day] == nil {
		g[day] = make(map[string]Cell)
	}
	g[day][branchID] = cell
}

// PlacedAssignment pairs an assignment with the branch it sits in.
type PlacedAssignment struct {
	BranchID   string
	Role       roster.Role
	Assignment Assignment
}

// DayAssignments returns every assignment of one staff member on one day
// across all branches, in stable branch order.
func (g Grid) DayAssignments(staffID, day string, branches []branch.Branch) []PlacedAssignment {
	var out []PlacedAssignment
	for _, b := range branches {
		cell := g.Cell(day, b.ID)
		for _, a := range cell.Nurses {
			if a.StaffID == staffID {
				out = append(out, PlacedAssignment{BranchID: b.ID, Role: roster.RoleNurse, Assignment: a})
			}
		}
		for _, a := range cell.Receptionists {
			if a.StaffID == staffID {
				out = append(out, PlacedAssignment{BranchID: b.ID, Role: roster.RoleReceptionist, Assignment: a})
			}
		}
	}
	return out
}

// IsAssigned reports whether the staff member holds any slot on the day.
func (g Grid) IsAssigned(staffID, day string) bool {
	for _, cell := range g[day] {
		if cell.has(roster.RoleNurse, staffID) || cell.has(roster.RoleReceptionist, staffID) {
			return true
		}
	}
	return false
}

// ShiftCount counts the slots a staff member holds across the whole week.
// Split shifts at two branches on one day count as two.
func (g Grid) ShiftCount(staffID string) int {
	count := 0
	for _, day := range clock.DayNames {
		for _, cell := range g[day] {
			for _, a := range cell.Nurses {
				if a.StaffID == staffID {
					count++
				}
			}
			for _, a := range cell.Receptionists {
				if a.StaffID == staffID {
					count++
				}
			}
		}
	}
	return count
}

// DaysWorked counts the days on which a staff member holds at least one
// slot.
func (g Grid) DaysWorked(staffID string) int {
	count := 0
	for _, day := range clock.DayNames {
		if g.IsAssigned(staffID, day) {
			count++
		}
	}
	return count
}

// Place adds an assignment to the grid, enforcing the cell invariants: the
// branch must be open, clinics carry no receptionist slot, the role's slot
// cap must not be exceeded and a staff ID appears at most once per role
// list.
func (g Grid) Place(b branch.Branch, day string, role roster.Role, a Assignment) error {
	if !b.IsOpen(day) {
		return ErrBranchClosed
	}
	if role == roster.RoleReceptionist && b.IsClinic {
		return ErrClinicReceptionist
	}
	cell := g.Cell(day, b.ID)
	if cell.has(role, a.StaffID) {
		return ErrAlreadyAssigned
	}
	switch role {
	case roster.RoleNurse:
		if len(cell.Nurses) >= b.MaxNurses(day) {
			return ErrCellFull
		}
		cell.Nurses = append(cell.Nurses, a)
	case roster.RoleReceptionist:
		if len(cell.Receptionists) >= 1 {
			return ErrCellFull
		}
		cell.Receptionists = append(cell.Receptionists, a)
	default:
		return ErrInvalidRole
	}
	g.setCell(day, b.ID, cell)
	return nil
}

// Remove drops a staff member's assignment from a cell. Locked assignments
// are removable: removal is an explicit user edit, not a scheduler pass.
// Returns false when no matching assignment existed.
func (g Grid) Remove(day, branchID string, role roster.Role, staffID string) bool {
	cell := g.Cell(day, branchID)
	removed := false
	filter := func(list []Assignment) []Assignment {
		out := list[:0]
		for _, a := range list {
			if a.StaffID == staffID {
				removed = true
				continue
			}
			out = append(out, a)
		}
		return out
	}
	switch role {
	case roster.RoleNurse:
		cell.Nurses = filter(append([]Assignment(nil), cell.Nurses...))
	case roster.RoleReceptionist:
		cell.Receptionists = filter(append([]Assignment(nil), cell.Receptionists...))
	default:
		return false
	}
	if removed {
		g.setCell(day, branchID, cell)
	}
	return removed
}

// ToggleLock flips the locked flag of one assignment. Returns false when
// the assignment does not exist.
func (g Grid) ToggleLock(day, branchID string, role roster.Role, staffID string) bool {
	cell := g.Cell(day, branchID)
	toggle := func(list []Assignment) bool {
		for i := range list {
			if list[i].StaffID == staffID {
				list[i].Locked = !list[i].Locked
				return true
			}
		}
		return false
	}
	var ok bool
	switch role {
	case roster.RoleNurse:
		nurses := append([]Assignment(nil), cell.Nurses...)
		if ok = toggle(nurses); ok {
			cell.Nurses = nurses
		}
	case roster.RoleReceptionist:
		receptionists := append([]Assignment(nil), cell.Receptionists...)
		if ok = toggle(receptionists); ok {
			cell.Receptionists = receptionists
		}
	}
	if ok {
		g.setCell(day, branchID, cell)
	}
	return ok
}

// SetShifts rewrites the time window of every full-day unlocked assignment
// in one role list of a cell. The scheduler uses it to push remaining
// full-day nurses onto the complementary half of a split day.
func (g Grid) SetShifts(day, branchID string, role roster.Role, start, end string) {
	cell := g.Cell(day, branchID)
	rewrite := func(list []Assignment) []Assignment {
		out := append([]Assignment(nil), list...)
		for i := range out {
			if out[i].Locked || !out[i].FullDay() {
				continue
			}
			out[i].ShiftStart = start
			out[i].ShiftEnd = end
		}
		return out
	}
	switch role {
	case roster.RoleNurse:
		cell.Nurses = rewrite(cell.Nurses)
	case roster.RoleReceptionist:
		cell.Receptionists = rewrite(cell.Receptionists)
	default:
		return
	}
	g.setCell(day, branchID, cell)
}

// ClearUnlocked removes every assignment that is not locked, leaving the
// pinned ones in place. Used by the "clear week" edit.
func (g Grid) ClearUnlocked() {
	lockedOnly := func(list []Assignment) []Assignment {
		var out []Assignment
		for _, a := range list {
			if a.Locked {
				out = append(out, a)
			}
		}
		return out
	}
	for day, row := range g {
		for branchID, cell := range row {
			g[day][branchID] = Cell{
				Nurses:        lockedOnly(cell.Nurses),
				Receptionists: lockedOnly(cell.Receptionists),
			}
		}
	}
}

// SeedFromLocked builds a fresh grid carrying only the locked assignments
// of a prior grid. This is the auto-scheduler's starting state.
func SeedFromLocked(prior Grid, branches []branch.Branch) Grid {
	g := NewGrid(branches)
	if prior == nil {
		return g
	}
	lockedOnly := func(list []Assignment) []Assignment {
		var out []Assignment
		for _, a := range list {
			if a.Locked {
				out = append(out, a)
			}
		}
		return out
	}
	for _, day := range clock.DayNames {
		for _, b := range branches {
			prev, ok := prior[day][b.ID]
			if !ok {
				continue
			}
			g[day][b.ID] = Cell{
				Nurses:        lockedOnly(prev.Nurses),
				Receptionists: lockedOnly(prev.Receptionists),
			}
		}
	}
	return g
}
