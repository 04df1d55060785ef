// Package portfolio simulates a weighted buy-and-hold portfolio over
// historical price series and derives its return and risk statistics.
package portfolio

import (
	"fmt"
	"time"

	"GoldPulse/internal/domain/models"
)

// Position pairs an allocation with its already-fetched price history.
type Position struct {
	Symbol string
	Weight int // integer percent of the portfolio
	Bars   []models.Bar
}

// Input describes one simulation run. Callers are responsible for a
// non-empty position set whose weights sum to 100; Simulate does not
// re-validate that contract.
type Input struct {
	Amount       float64
	Start        time.Time
	End          time.Time
	Positions    []Position
	RiskFreeRate float64 // annual; DefaultRiskFreeRate when zero
}

// InsufficientDataError reports a symbol whose filtered series is too
// short to simulate.
type InsufficientDataError struct {
	Symbol string
	Bars   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("portfolio: %s has %d bars in window, need at least 2", e.Symbol, e.Bars)
}

// Simulate filters each position's bars to [Start, End], blends them into
// a daily portfolio value series, and derives statistics.
//
// Series are aligned positionally after filtering, not by calendar date:
// if assets have different trading-day counts only the first minLen
// observations of each are used. This mirrors the dashboard's historical
// behavior; differing trading calendars will silently misalign.
func Simulate(in Input) (*models.SimulationResult, error) {
	type filtered struct {
		weight float64
		bars   []models.Bar
	}

	minLen := -1
	series := make([]filtered, 0, len(in.Positions))
	for _, pos := range in.Positions {
		bars := models.FilterRange(pos.Bars, in.Start, in.End)
		if len(bars) < 2 {
			return nil, &InsufficientDataError{Symbol: pos.Symbol, Bars: len(bars)}
		}
		series = append(series, filtered{weight: float64(pos.Weight) / 100, bars: bars})
		if minLen < 0 || len(bars) < minLen {
			minLen = len(bars)
		}
	}

	values := make([]float64, minLen)
	for i := 0; i < minLen; i++ {
		var dayValue float64
		for _, fd := range series {
			growth := fd.bars[i].Close / fd.bars[0].Close
			dayValue += in.Amount * fd.weight * growth
		}
		values[i] = dayValue
	}

	last := values[len(values)-1]
	years := in.End.Sub(in.Start).Hours() / 24 / 365.25
	returns := DailyReturns(values)

	rf := in.RiskFreeRate
	if rf == 0 {
		rf = DefaultRiskFreeRate
	}

	// dates come from the first position, truncated to the blended length
	points := make([]models.ValuePoint, minLen)
	for i := range points {
		points[i] = models.ValuePoint{Date: series[0].bars[i].Date, Value: values[i]}
	}

	return &models.SimulationResult{
		TotalReturn: (last - in.Amount) / in.Amount * 100,
		CAGR:        CAGR(in.Amount, last, years),
		MaxDrawdown: MaxDrawdown(values),
		Volatility:  Volatility(returns),
		SharpeRatio: SharpeRatio(returns, rf),
		Series:      points,
	}, nil
}
