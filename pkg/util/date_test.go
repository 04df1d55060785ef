package util

import (
	"testing"
	"time"
)

func TestDayKeyUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// 2024-04-16 02:00 in UTC+9 is still 2024-04-15 in UTC.
	got := DayKey(time.Date(2024, 4, 16, 2, 0, 0, 0, loc))
	if got != "2024-04-15" {
		t.Fatalf("DayKey = %q, want 2024-04-15", got)
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	day, err := ParseDay("2024-04-15")
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if DayKey(day) != "2024-04-15" {
		t.Fatalf("round trip gave %q", DayKey(day))
	}

	if _, err := ParseDay("not-a-date"); err == nil {
		t.Fatal("expected error for malformed day")
	}
}

func TestDaysBetween(t *testing.T) {
	a, _ := ParseDay("2024-04-15")
	b, _ := ParseDay("2024-04-18")
	if d := DaysBetween(a, b); d != 3 {
		t.Fatalf("DaysBetween = %d, want 3", d)
	}
	if d := DaysBetween(b, a); d != 3 {
		t.Fatalf("DaysBetween reversed = %d, want 3", d)
	}
	if d := DaysBetween(a, a); d != 0 {
		t.Fatalf("DaysBetween same day = %d, want 0", d)
	}
}
