package clock

import (
	"testing"
	"time"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"13:30", 810},
		{"23:59", 1439},
		{"", 0},
		{"garbage", 0},
		{"9", 0},
	}
	for _, c := range cases {
		got := ToMinutes(c.input)
		if got != c.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestHoursBetween(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"09:00", "17:00", 8},
		{"08:30", "12:00", 3.5},
		{"13:00", "13:00", 0},
		{"17:00", "09:00", -8},
	}
	for _, c := range cases {
		got := HoursBetween(c.start, c.end)
		if got != c.want {
			t.Errorf("HoursBetween(%q, %q) = %v, want %v", c.start, c.end, got, c.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"touching endpoints", "09:00", "13:00", "13:00", "17:00", false},
		{"one minute past", "09:00", "13:01", "13:00", "17:00", true},
		{"disjoint", "09:00", "11:00", "14:00", "17:00", false},
		{"contained", "10:00", "11:00", "09:00", "17:00", true},
		{"identical", "09:00", "17:00", "09:00", "17:00", true},
		{"reversed touch", "13:00", "17:00", "09:00", "13:00", false},
	}
	for _, c := range cases {
		got := Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd)
		if got != c.want {
			t.Errorf("%s: Overlaps(%q,%q,%q,%q) = %v, want %v", c.name, c.aStart, c.aEnd, c.bStart, c.bEnd, got, c.want)
		}
	}
}

func TestMidpointSplit(t *testing.T) {
	cases := []struct {
		open, close string
		want        string
	}{
		{"09:00", "17:00", "13:00"},
		{"08:00", "14:00", "11:00"},
		{"08:30", "16:30", "13:00"}, // 12:30 midpoint rounds up
	}
	for _, c := range cases {
		got := MidpointSplit(c.open, c.close)
		if got != c.want {
			t.Errorf("MidpointSplit(%q, %q) = %q, want %q", c.open, c.close, got, c.want)
		}
	}
}

func TestWeekKey(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2025-03-12", "2025-03-10"}, // Wednesday -> that week's Monday
		{"2025-03-10", "2025-03-10"}, // Monday maps to itself
		{"2025-03-16", "2025-03-10"}, // Sunday belongs to the preceding Monday
	}
	for _, c := range cases {
		d, err := time.Parse(DateLayout, c.date)
		if err != nil {
			t.Fatalf("parse %q: %v", c.date, err)
		}
		if got := WeekKey(d); got != c.want {
			t.Errorf("WeekKey(%s) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestWeekDates(t *testing.T) {
	dates := WeekDates("2025-03-10")
	if len(dates) != 7 {
		t.Fatalf("WeekDates returned %d dates, want 7", len(dates))
	}
	if dates[0] != "2025-03-10" || dates[6] != "2025-03-16" {
		t.Errorf("WeekDates bounds = %q..%q, want 2025-03-10..2025-03-16", dates[0], dates[6])
	}
	if WeekDates("not-a-date") != nil {
		t.Error("WeekDates should return nil for malformed input")
	}
}

func TestPayCycleFor(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2025-03-25", "2025-03-25"},
		{"2025-03-31", "2025-03-25"},
		{"2025-04-24", "2025-03-25"},
		{"2025-04-25", "2025-04-25"},
		{"2025-01-10", "2024-12-25"}, // January rolls back across the year boundary
	}
	for _, c := range cases {
		d, _ := time.Parse(DateLayout, c.date)
		if got := PayCycleFor(d); got != c.want {
			t.Errorf("PayCycleFor(%s) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestPayCycleRange(t *testing.T) {
	start, end, err := PayCycleRange("2025-03-25")
	if err != nil {
		t.Fatalf("PayCycleRange: %v", err)
	}
	if start.Format(DateLayout) != "2025-03-25" || end.Format(DateLayout) != "2025-04-24" {
		t.Errorf("range = %s..%s, want 2025-03-25..2025-04-24", start.Format(DateLayout), end.Format(DateLayout))
	}

	if _, _, err := PayCycleRange("nope"); err == nil {
		t.Error("expected error for malformed cycle start")
	}
}

func TestWeekKeysForPayCycle(t *testing.T) {
	keys, err := WeekKeysForPayCycle("2025-03-25")
	if err != nil {
		t.Fatalf("WeekKeysForPayCycle: %v", err)
	}
	// 2025-03-25 is a Tuesday; the covering weeks start on Monday 2025-03-24
	// and run through the week containing 2025-04-24 (Monday 2025-04-21).
	want := []string{"2025-03-24", "2025-03-31", "2025-04-07", "2025-04-14", "2025-04-21"}
	if len(keys) != len(want) {
		t.Fatalf("got %d week keys %v, want %d", len(keys), keys, len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
