package branch

// Branch is a physical clinic location with its own weekly operating-hours
// table. Branches are reference data: loaded once at startup and treated as
// immutable for the lifetime of the process.
type Branch struct {
	ID       string
	Name     string
	Color    string
	IsClinic bool // clinic branches run nurse-only, no receptionist slot

	// Hours is keyed by weekday name ("Monday".."Sunday"). A day absent
	// from the table means the branch is closed that day.
	Hours map[string]DayHours
}

// DayHours describes one operating day of a branch.
type DayHours struct {
	Open       string  `json:"open"`  // "HH:MM"
	Close      string  `json:"close"` // "HH:MM"
	ShiftHours float64 `json:"shift_hours"`
	// Lunch is the unpaid break deducted once per staff member per worked
	// day, in hours. Most days carry the standard 1.0; a branch can reduce
	// it on short days (e.g. half-day Sundays).
	Lunch float64 `json:"lunch"`
	// MaxNurses is the nurse slot cap for this day. Zero means the default
	// of one; the weekly busy day at the flagship branch runs two.
	MaxNurses int `json:"max_nurses,omitempty"`
}

// IsOpen reports whether the branch operates on the given weekday.
func (b Branch) IsOpen(day string) bool {
	_, ok := b.Hours[day]
	return ok
}

// DayHours returns the operating hours for a day, if open.
func (b Branch) DayHours(day string) (DayHours, bool) {
	h, ok := b.Hours[day]
	return h, ok
}

// ShiftHours returns the staff-hours a default full-day shift represents on
// the given day, or 0 when closed.
func (b Branch) ShiftHours(day string) float64 {
	return b.Hours[day].ShiftHours
}

// MaxNurses returns the nurse slot cap for the given day.
func (b Branch) MaxNurses(day string) int {
	h, ok := b.Hours[day]
	if !ok || h.MaxNurses == 0 {
		return 1
	}
	return h.MaxNurses
}

// ByID finds a branch in a slice by its ID.
func ByID(branches []Branch, id string) (Branch, bool) {
	for _, b := range branches {
		if b.ID == id {
			return b, true
		}
	}
	return Branch{}, false
}

// NonClinic returns the branches that carry both a nurse and a receptionist
// slot, preserving input order.
func NonClinic(branches []Branch) []Branch {
	var out []Branch
	for _, b := range branches {
		if !b.IsClinic {
			out = append(out, b)
		}
	}
	return out
}

// Clinics returns the nurse-only branches, preserving input order.
func Clinics(branches []Branch) []Branch {
	var out []Branch
	for _, b := range branches {
		if b.IsClinic {
			out = append(out, b)
		}
	}
	return out
}
