package usecase

import (
	"context"
	"fmt"

	"GoldPulse/internal/analytics/indicator"
	"GoldPulse/internal/domain/models"
	domrepo "GoldPulse/internal/domain/repository"
	"GoldPulse/pkg/util"
)

// Indicator lookback windows used by the dashboard.
const (
	smaShortPeriod = 20
	smaLongPeriod  = 50
	emaShortPeriod = 12
	emaLongPeriod  = 26
	rsiPeriod      = 14
)

// SignalsUseCase derives the technical-signal view for one symbol.
type SignalsUseCase struct {
	market *MarketUseCase
}

func NewSignalsUseCase(market *MarketUseCase) *SignalsUseCase {
	return &SignalsUseCase{market: market}
}

type GetSignalsParams struct {
	Symbol string
	Range  domrepo.Range
}

func (uc *SignalsUseCase) GetSignals(ctx context.Context, p GetSignalsParams) (*models.SignalReport, error) {
	if !domrepo.IsValidRange(p.Range) {
		p.Range = domrepo.Range1Y
	}

	// Indicators need daily bars regardless of what the chart view shows.
	bars, err := uc.market.GetHistorical(ctx, GetHistoricalParams{
		Symbol:   p.Symbol,
		Range:    p.Range,
		Interval: domrepo.Interval1d,
	})
	if err != nil {
		return nil, fmt.Errorf("signals history: %w", err)
	}
	closes := models.Closes(bars)
	if len(closes) < 2 {
		return nil, fmt.Errorf("signals: not enough history for %s", p.Symbol)
	}

	sma20 := indicator.SMA(closes, smaShortPeriod)
	sma50 := indicator.SMA(closes, smaLongPeriod)
	ema12 := indicator.EMA(closes, emaShortPeriod)
	ema26 := indicator.EMA(closes, emaLongPeriod)
	rsi := indicator.RSI(closes, rsiPeriod)

	report := &models.SignalReport{
		Symbol:    p.Symbol,
		Range:     string(p.Range),
		SMA20:     toPoints(bars, sma20),
		SMA50:     toPoints(bars, sma50),
		EMA12:     toPoints(bars, ema12),
		EMA26:     toPoints(bars, ema26),
		RSI:       toPoints(bars, rsi),
		LastRSI:   indicator.Last(rsi),
		LastCross: indicator.LastCross(sma20, sma50),
	}

	lastClose := closes[len(closes)-1]
	var signals []models.NamedSignal
	if v := indicator.Last(rsi); v != nil {
		signals = append(signals, models.NamedSignal{Name: "RSI", Signal: indicator.FromRSI(*v)})
	}
	if v := indicator.Last(sma20); v != nil {
		signals = append(signals, models.NamedSignal{Name: "SMA20", Signal: indicator.FromMA(lastClose, *v)})
	}
	if v := indicator.Last(sma50); v != nil {
		signals = append(signals, models.NamedSignal{Name: "SMA50", Signal: indicator.FromMA(lastClose, *v)})
	}
	if v := indicator.Last(ema12); v != nil {
		signals = append(signals, models.NamedSignal{Name: "EMA12", Signal: indicator.FromMA(lastClose, *v)})
	}
	if v := indicator.Last(ema26); v != nil {
		signals = append(signals, models.NamedSignal{Name: "EMA26", Signal: indicator.FromMA(lastClose, *v)})
	}
	report.Signals = signals

	strengths := make([]models.SignalStrength, len(signals))
	for i, s := range signals {
		strengths[i] = s.Signal
	}
	report.Overall = indicator.Aggregate(strengths)

	return report, nil
}

func toPoints(bars []models.Bar, series []*float64) []models.IndicatorPoint {
	points := make([]models.IndicatorPoint, len(series))
	for i := range series {
		points[i] = models.IndicatorPoint{
			Date:  util.DayKey(bars[i].Date),
			Value: series[i],
		}
	}
	return points
}
