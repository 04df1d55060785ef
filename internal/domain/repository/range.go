package repository

// Range is a named chart window requested by the dashboard.
type Range string

const (
	Range1D  Range = "1D"
	Range1W  Range = "1W"
	Range1M  Range = "1M"
	Range3M  Range = "3M"
	Range6M  Range = "6M"
	Range1Y  Range = "1Y"
	Range5Y  Range = "5Y"
	RangeAll Range = "ALL"
)

// Interval is the bar granularity understood by the chart provider.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval1d  Interval = "1d"
	Interval1wk Interval = "1wk"
	Interval1mo Interval = "1mo"
)

// IsValidRange returns true if r is a supported range.
func IsValidRange(r Range) bool {
	switch r {
	case Range1D, Range1W, Range1M, Range3M, Range6M, Range1Y, Range5Y, RangeAll:
		return true
	default:
		return false
	}
}

// DefaultRange returns the default chart range.
func DefaultRange() Range { return Range1M }

// NormalizeRange converts a raw string to a valid range (or default).
func NormalizeRange(s string) Range {
	if s == "" {
		return DefaultRange()
	}
	r := Range(s)
	if IsValidRange(r) {
		return r
	}
	return DefaultRange()
}

// IntervalFor maps a range to its chart bar granularity.
func IntervalFor(r Range) Interval {
	switch r {
	case Range1D:
		return Interval5m
	case Range1W:
		return Interval15m
	case Range5Y:
		return Interval1wk
	case RangeAll:
		return Interval1mo
	default:
		return Interval1d
	}
}

// LiquidityIntervalFor maps a range to bar granularity for volume history.
// Intraday granularities make no sense for daily dollar volume, so short
// ranges collapse to daily bars.
func LiquidityIntervalFor(r Range) Interval {
	switch r {
	case Range5Y:
		return Interval1wk
	case RangeAll:
		return Interval1mo
	default:
		return Interval1d
	}
}
