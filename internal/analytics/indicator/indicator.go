// Package indicator computes technical indicators over closing-price
// series. All functions are pure: they allocate their results and never
// touch shared state, so arbitrary computations may run concurrently.
//
// Indicator series are aligned 1:1 with their input; a nil entry marks an
// index where the lookback window is not yet full.
package indicator

import "GoldPulse/internal/domain/models"

// DefaultRSIPeriod is the conventional RSI lookback.
const DefaultRSIPeriod = 14

// SMA computes the simple moving average with the given period. Entries
// before index period-1 are nil.
func SMA(prices []float64, period int) []*float64 {
	out := make([]*float64, len(prices))
	if period <= 0 {
		return out
	}

	var sum float64
	for i, p := range prices {
		sum += p
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= period-1 {
			v := sum / float64(period)
			out[i] = &v
		}
	}
	return out
}

// EMA computes the exponential moving average with smoothing constant
// 2/(period+1), seeded at index period-1 with the SMA of the first period
// values. The recurrence is strictly sequential.
func EMA(prices []float64, period int) []*float64 {
	out := make([]*float64, len(prices))
	if period <= 0 || len(prices) < period {
		return out
	}

	k := 2.0 / float64(period+1)

	var seed float64
	for _, p := range prices[:period] {
		seed += p
	}
	seed /= float64(period)
	out[period-1] = &seed

	prev := seed
	for i := period; i < len(prices); i++ {
		v := (prices[i]-prev)*k + prev
		out[i] = &v
		prev = v
	}
	return out
}

// RSI computes the relative strength index over day-over-day changes.
// Entries before index period are nil (one more than SMA/EMA because the
// change series is one shorter than the price series). Average gain and
// loss are plain means of the trailing window, not Wilder-smoothed. A
// window with zero average loss yields 100.
func RSI(prices []float64, period int) []*float64 {
	out := make([]*float64, len(prices))
	if period <= 0 || len(prices) <= period {
		return out
	}

	changes := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		changes[i-1] = prices[i] - prices[i-1]
	}

	for i := period; i < len(prices); i++ {
		var gain, loss float64
		for _, c := range changes[i-period : i] {
			if c > 0 {
				gain += c
			} else {
				loss -= c
			}
		}
		gain /= float64(period)
		loss /= float64(period)

		var v float64
		if loss == 0 {
			v = 100
		} else {
			v = 100 - 100/(1+gain/loss)
		}
		out[i] = &v
	}
	return out
}

// DetectCrosses finds every index where the short moving average crossed
// the long one. Both series must have values at i-1 and i. Equality at the
// prior tick counts as "at or below": the cross is attributed to the
// moment the strict inequality first holds.
func DetectCrosses(short, long []*float64) []models.Cross {
	var crosses []models.Cross
	n := len(short)
	if len(long) < n {
		n = len(long)
	}
	for i := 1; i < n; i++ {
		ps, cs := short[i-1], short[i]
		pl, cl := long[i-1], long[i]
		if ps == nil || cs == nil || pl == nil || cl == nil {
			continue
		}
		if *ps <= *pl && *cs > *cl {
			crosses = append(crosses, models.Cross{Index: i, Kind: models.GoldenCross})
		}
		if *ps >= *pl && *cs < *cl {
			crosses = append(crosses, models.Cross{Index: i, Kind: models.DeathCross})
		}
	}
	return crosses
}

// LastCross returns the most recent crossover, or nil if none occurred.
// Callers wanting "the current regime" only care about this one.
func LastCross(short, long []*float64) *models.Cross {
	crosses := DetectCrosses(short, long)
	if len(crosses) == 0 {
		return nil
	}
	last := crosses[len(crosses)-1]
	return &last
}

// Last returns the final non-nil value of an indicator series, or nil.
func Last(series []*float64) *float64 {
	for i := len(series) - 1; i >= 0; i-- {
		if series[i] != nil {
			return series[i]
		}
	}
	return nil
}
