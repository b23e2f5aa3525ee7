package roster

import "time"

type Role string

const (
	RoleNurse        Role = "nurse"
	RoleReceptionist Role = "receptionist"
	RoleSupport      Role = "support" // cleaners etc.; tracked for timesheets, never scheduled
)

var RoleValues = []string{
	string(RoleNurse),
	string(RoleReceptionist),
	string(RoleSupport),
}

type EmploymentType string

const (
	EmploymentPermanent EmploymentType = "permanent"
	EmploymentPartTime  EmploymentType = "parttime"
	EmploymentLocum     EmploymentType = "locum"
)

var EmploymentTypeValues = []string{
	string(EmploymentPermanent),
	string(EmploymentPartTime),
	string(EmploymentLocum),
}

// StaffMember is one employee of the clinic operation. The scheduler never
// mutates staff records; they change only through roster edit operations.
type StaffMember struct {
	ID             string
	Name           string
	Role           Role
	EmploymentType EmploymentType

	// Branches is the ordered preference list of branches this person may
	// work. LastResortBranches are additionally workable but only when no
	// preferred candidate covers the slot.
	Branches           []string
	LastResortBranches []string
	MainBranch         string
	AlsoMainBranch     string

	// AvailableDays restricts scheduling to the listed weekday names.
	// Nil or empty means all seven days.
	AvailableDays []string

	// Priority staff get first pick of requested shifts.
	Priority bool
	// CanWorkAlone permits a branch to operate without a receptionist when
	// this nurse covers it.
	CanWorkAlone bool
	// WeekendBothOrNone schedules this person for both weekend days at the
	// same branch, or not at all.
	WeekendBothOrNone bool

	MinShiftsPerWeek   int
	MonthlyHoursTarget float64 // permanent staff only
	Color              string  // presentation tag, ignored by scheduling

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorksDay reports whether the member's day-of-week restriction admits the
// given weekday name.
func (s StaffMember) WorksDay(day string) bool {
	if len(s.AvailableDays) == 0 {
		return true
	}
	for _, d := range s.AvailableDays {
		if d == day {
			return true
		}
	}
	return false
}

// MayWork reports whether branchID is in the member's regular or last-resort
// branch list.
func (s StaffMember) MayWork(branchID string) bool {
	return s.HasRegularBranch(branchID) || s.HasLastResortBranch(branchID)
}

func (s StaffMember) HasRegularBranch(branchID string) bool {
	for _, b := range s.Branches {
		if b == branchID {
			return true
		}
	}
	return false
}

func (s StaffMember) HasLastResortBranch(branchID string) bool {
	for _, b := range s.LastResortBranches {
		if b == branchID {
			return true
		}
	}
	return false
}

// IsScheduleRole reports whether the member appears on the weekly rota at
// all. Support roles are timesheet-only.
func (s StaffMember) IsScheduleRole() bool {
	return s.Role == RoleNurse || s.Role == RoleReceptionist
}

// ByID finds a staff member in a slice by ID.
func ByID(staff []StaffMember, id string) (StaffMember, bool) {
	for _, s := range staff {
		if s.ID == id {
			return s, true
		}
	}
	return StaffMember{}, false
}
