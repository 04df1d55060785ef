package models

import "time"

// Allocation assigns an integer percentage weight to a symbol. Callers are
// responsible for supplying a non-empty set whose weights sum to 100.
type Allocation struct {
	Symbol string `json:"symbol" validate:"required"`
	Weight int    `json:"weight" validate:"gte=1,lte=100"`
}

// ValuePoint is one day of blended portfolio value.
type ValuePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// SimulationResult holds the outcome of a portfolio backtest.
type SimulationResult struct {
	TotalReturn float64      `json:"totalReturn"` // percent
	CAGR        float64      `json:"cagr"`        // percent
	MaxDrawdown float64      `json:"maxDrawdown"` // percent
	Volatility  float64      `json:"volatility"`  // percent, annualized
	SharpeRatio float64      `json:"sharpeRatio"`
	Series      []ValuePoint `json:"series"`
}

// CorrelationMatrix is a symmetric matrix of pairwise Pearson correlations
// of daily returns, in the same order as Symbols.
type CorrelationMatrix struct {
	Symbols []string    `json:"symbols"`
	Matrix  [][]float64 `json:"matrix"`
}

// NormalizedPoint is one observation of a percent-rebased price series.
type NormalizedPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ComparisonRow is one calendar day across several rebased series. Symbols
// with no observation for that date are simply absent from Values.
type ComparisonRow struct {
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
}
