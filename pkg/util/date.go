package util

import "time"

// DayFormat is the canonical day key used across historical series.
const DayFormat = "2006-01-02"

// DayKey formats t as a YYYY-MM-DD key in UTC.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// ParseDay parses a YYYY-MM-DD key back into a UTC midnight time.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// DaysBetween returns the absolute distance between two days in whole days.
func DaysBetween(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / 24)
}
