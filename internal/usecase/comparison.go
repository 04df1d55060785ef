package usecase

import (
	"context"
	"fmt"
	"sync"

	"GoldPulse/internal/analytics/correlation"
	"GoldPulse/internal/analytics/normalize"
	"GoldPulse/internal/domain/models"
	domrepo "GoldPulse/internal/domain/repository"
	"GoldPulse/pkg/logger"
)

// ComparisonUseCase builds the cross-asset views: the correlation matrix
// and the rebased comparison chart.
type ComparisonUseCase struct {
	market *MarketUseCase
	log    *logger.Logger
}

func NewComparisonUseCase(market *MarketUseCase, log *logger.Logger) *ComparisonUseCase {
	return &ComparisonUseCase{market: market, log: log}
}

// fetchDaily loads daily bars for each symbol concurrently. Symbols whose
// fetch fails are dropped so one bad ticker cannot sink the whole view.
func (uc *ComparisonUseCase) fetchDaily(ctx context.Context, symbols []string, r domrepo.Range) ([]string, [][]models.Bar) {
	results := make([][]models.Bar, len(symbols))
	var wg sync.WaitGroup
	for i, symbol := range symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			bars, err := uc.market.GetHistorical(ctx, GetHistoricalParams{
				Symbol:   symbol,
				Range:    r,
				Interval: domrepo.Interval1d,
			})
			if err != nil {
				uc.log.Warn("comparison fetch failed",
					logger.String("symbol", symbol),
					logger.Error(err),
				)
				return
			}
			results[i] = bars
		}(i, symbol)
	}
	wg.Wait()

	keptSymbols := make([]string, 0, len(symbols))
	keptBars := make([][]models.Bar, 0, len(symbols))
	for i, bars := range results {
		if len(bars) > 0 {
			keptSymbols = append(keptSymbols, symbols[i])
			keptBars = append(keptBars, bars)
		}
	}
	return keptSymbols, keptBars
}

type CorrelateParams struct {
	Symbols []string
	Range   domrepo.Range
}

func (uc *ComparisonUseCase) Correlate(ctx context.Context, p CorrelateParams) (*models.CorrelationMatrix, error) {
	if len(p.Symbols) < 2 {
		return nil, fmt.Errorf("correlation needs at least 2 symbols")
	}
	if !domrepo.IsValidRange(p.Range) {
		p.Range = domrepo.Range1Y
	}

	symbols, bars := uc.fetchDaily(ctx, p.Symbols, p.Range)
	if len(symbols) < 2 {
		return nil, fmt.Errorf("correlation: fewer than 2 symbols had usable history")
	}

	closes := make([][]float64, len(bars))
	for i, b := range bars {
		closes[i] = models.Closes(b)
	}
	m := correlation.Matrix(symbols, closes)
	return &m, nil
}

type CompareParams struct {
	Symbols []string
	Range   domrepo.Range
}

// Compare rebases each symbol's series to percent change and aligns them
// on calendar dates.
func (uc *ComparisonUseCase) Compare(ctx context.Context, p CompareParams) ([]models.ComparisonRow, error) {
	if len(p.Symbols) == 0 {
		return nil, fmt.Errorf("at least one symbol required")
	}
	if !domrepo.IsValidRange(p.Range) {
		p.Range = domrepo.Range1Y
	}

	symbols, bars := uc.fetchDaily(ctx, p.Symbols, p.Range)
	if len(symbols) == 0 {
		return nil, fmt.Errorf("compare: no symbol had usable history")
	}

	series := make(map[string][]models.NormalizedPoint, len(symbols))
	for i, symbol := range symbols {
		if points := normalize.ToPercent(bars[i]); points != nil {
			series[symbol] = points
		}
	}
	return normalize.Align(series), nil
}
