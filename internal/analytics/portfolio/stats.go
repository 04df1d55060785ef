package portfolio

import "math"

const (
	// tradingDaysPerYear is the conventional annualization constant.
	tradingDaysPerYear = 252

	// DefaultRiskFreeRate is the annual risk-free rate used by the Sharpe
	// ratio when the caller does not override it.
	DefaultRiskFreeRate = 0.05
)

// CAGR returns the compound annual growth rate, in percent, of growing
// startValue into endValue over the given number of years. Zero when the
// elapsed time or the start value is non-positive.
func CAGR(startValue, endValue, years float64) float64 {
	if years <= 0 || startValue <= 0 {
		return 0
	}
	return (math.Pow(endValue/startValue, 1/years) - 1) * 100
}

// MaxDrawdown returns the largest peak-to-trough decline, in percent, of
// the value series. A monotonically rising series has drawdown 0.
func MaxDrawdown(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	peak := values[0]
	var maxDD float64
	for _, v := range values {
		if v > peak {
			peak = v
		}
		dd := (peak - v) / peak * 100
		if dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// DailyReturns computes the simple day-over-day fractional returns of a
// value series. The result is one element shorter than the input.
func DailyReturns(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	out := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		out[i-1] = (values[i] - values[i-1]) / values[i-1]
	}
	return out
}

// Volatility returns the annualized sample standard deviation of daily
// returns, in percent. Zero with fewer than two observations.
func Volatility(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var variance float64
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns) - 1)

	return math.Sqrt(variance) * math.Sqrt(tradingDaysPerYear) * 100
}

// SharpeRatio returns the annualized Sharpe ratio of daily returns against
// the given annual risk-free rate. Zero when volatility is zero.
func SharpeRatio(returns []float64, riskFreeRate float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	vol := Volatility(returns) / 100
	if vol == 0 {
		return 0
	}
	return (mean*tradingDaysPerYear - riskFreeRate) / vol
}
