package leave

// Availability maps a staff ID to the set of ISO dates ("YYYY-MM-DD") on
// which that person is unavailable (leave, sick days). It is a read-only
// input to scheduling; a missing staff ID means fully available.
type Availability map[string][]string

// IsUnavailable reports whether the staff member is on leave on the given
// date.
func (a Availability) IsUnavailable(staffID, date string) bool {
	for _, d := range a[staffID] {
		if d == date {
			return true
		}
	}
	return false
}

// ShiftRequests maps a staff ID to requested branch per weekday name for one
// week. Only honored for priority staff.
type ShiftRequests map[string]map[string]string

// For returns the requested branch for a staff member on a day, or "".
func (r ShiftRequests) For(staffID, day string) string {
	return r[staffID][day]
}
