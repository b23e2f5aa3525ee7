// Package clock holds the time arithmetic shared by the rota engine and the
// hours aggregation: "HH:MM" parsing, half-open interval overlap tests, week
// date expansion and the 25th-to-24th pay-cycle window.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for all dates handled by the service.
const DateLayout = "2006-01-02"

// DayNames are the canonical weekday names of a schedule week, Monday first.
// Week expansion (WeekDates) and every grid iteration follow this order.
var DayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// payCycleDay is the day of month on which a pay cycle starts. A cycle runs
// from the 25th of one month through the 24th of the next.
const payCycleDay = 25

// ToMinutes parses a "HH:MM" string into minutes since midnight. Empty or
// malformed input yields 0.
func ToMinutes(hhmm string) int {
	if hhmm == "" {
		return 0
	}
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return h*60 + m
}

// ToClock formats minutes since midnight as "HH:MM".
func ToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// HoursBetween returns the duration from start to end in fractional hours.
// The result is negative when the arguments are misordered.
func HoursBetween(start, end string) float64 {
	return float64(ToMinutes(end)-ToMinutes(start)) / 60
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap, so split
// shifts such as 09:00-13:00 and 13:00-17:00 are compatible.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return ToMinutes(aStart) < ToMinutes(bEnd) && ToMinutes(bStart) < ToMinutes(aEnd)
}

// MidpointSplit returns the midpoint between open and close, rounded to the
// nearest whole hour. Used to offer morning/afternoon half-day slots.
func MidpointSplit(open, close string) string {
	mid := (ToMinutes(open) + ToMinutes(close)) / 2
	rounded := ((mid + 30) / 60) * 60
	return ToClock(rounded)
}

// WeekKey returns the Monday of the week containing date, formatted as
// "YYYY-MM-DD". Schedule grids are persisted under this key.
func WeekKey(date time.Time) string {
	offset := int(date.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return date.AddDate(0, 0, -offset).Format(DateLayout)
}

// WeekDates expands a week-start date into the seven dates of that week,
// Monday first. A malformed weekStart yields nil.
func WeekDates(weekStart string) []string {
	start, err := time.Parse(DateLayout, weekStart)
	if err != nil {
		return nil
	}
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i).Format(DateLayout)
	}
	return dates
}

// PayCycleFor returns the start date ("YYYY-MM-25") of the pay cycle
// containing the given date.
func PayCycleFor(date time.Time) string {
	if date.Day() >= payCycleDay {
		return time.Date(date.Year(), date.Month(), payCycleDay, 0, 0, 0, 0, time.UTC).Format(DateLayout)
	}
	prev := time.Date(date.Year(), date.Month()-1, payCycleDay, 0, 0, 0, 0, time.UTC)
	return prev.Format(DateLayout)
}

// PayCycleRange returns the inclusive date range covered by the cycle
// starting at cycleStart: the 25th through the 24th of the next month.
func PayCycleRange(cycleStart string) (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, cycleStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pay cycle start: %w", err)
	}
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// WeekKeysForPayCycle returns the week keys (Mondays) of every schedule week
// that overlaps the pay cycle, in chronological order.
func WeekKeysForPayCycle(cycleStart string) ([]string, error) {
	start, end, err := PayCycleRange(cycleStart)
	if err != nil {
		return nil, err
	}

	current, _ := time.Parse(DateLayout, WeekKey(start))
	var keys []string
	for !current.After(end) {
		weekEnd := current.AddDate(0, 0, 6)
		if !weekEnd.Before(start) {
			keys = append(keys, current.Format(DateLayout))
		}
		current = current.AddDate(0, 0, 7)
	}
	return keys, nil
}
