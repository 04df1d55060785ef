package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"GoldPulse/internal/analytics/liquidity"
	"GoldPulse/internal/domain/models"
	domrepo "GoldPulse/internal/domain/repository"
	"GoldPulse/internal/refdata"
	"GoldPulse/pkg/logger"
)

type nopMetrics struct{}

func (nopMetrics) RecordUpstreamFetch(string, string) {}
func (nopMetrics) RecordCache(string)                 {}
func (nopMetrics) RecordRateLimited()                 {}
func (nopMetrics) RecordLastPrice(string, float64)    {}
func (nopMetrics) RecordLatency(string, float64)      {}

// fakeMarket serves canned data keyed by symbol.
type fakeMarket struct {
	quotes map[string]*models.Quote
	bars   map[string][]models.Bar
}

func (f *fakeMarket) Quote(_ context.Context, symbol string) (*models.Quote, error) {
	q, ok := f.quotes[symbol]
	if !ok {
		return nil, fmt.Errorf("no quote for %s", symbol)
	}
	return q, nil
}

func (f *fakeMarket) BatchQuotes(ctx context.Context, symbols []string) ([]models.Quote, error) {
	out := make([]models.Quote, 0, len(symbols))
	for _, s := range symbols {
		if q, err := f.Quote(ctx, s); err == nil {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeMarket) Historical(_ context.Context, symbol string, _ domrepo.Range, _ domrepo.Interval) ([]models.Bar, error) {
	bars, ok := f.bars[symbol]
	if !ok {
		return nil, fmt.Errorf("no history for %s", symbol)
	}
	return bars, nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func newMarketUC(t *testing.T, fake *fakeMarket) *MarketUseCase {
	t.Helper()
	return NewMarketUseCase(fake, nil, nil, CacheTTL{}, testLogger(t), nopMetrics{})
}

// dailyBars builds a linear close series starting at a given date.
func dailyBars(start string, closes ...float64) []models.Bar {
	day, err := time.Parse("2006-01-02", start)
	if err != nil {
		panic(err)
	}
	bars := make([]models.Bar, len(closes))
	for i, c := range closes {
		bars[i] = models.Bar{Date: day.AddDate(0, 0, i), Close: c, Volume: 1000}
	}
	return bars
}

func TestGetQuoteUsesFallback(t *testing.T) {
	primary := &fakeMarket{quotes: map[string]*models.Quote{}}
	fallback := &fakeMarket{quotes: map[string]*models.Quote{
		"GLD": {Symbol: "GLD", Price: 220},
	}}
	uc := NewMarketUseCase(primary, fallback, nil, CacheTTL{}, testLogger(t), nopMetrics{})

	q, err := uc.GetQuote(context.Background(), "gld")
	if err != nil {
		t.Fatalf("GetQuote: %v", err)
	}
	if q.Price != 220 {
		t.Fatalf("expected fallback quote, got %+v", q)
	}
}

func TestGetQuoteBothFail(t *testing.T) {
	uc := NewMarketUseCase(&fakeMarket{}, &fakeMarket{}, nil, CacheTTL{}, testLogger(t), nopMetrics{})
	if _, err := uc.GetQuote(context.Background(), "GLD"); err == nil {
		t.Fatal("expected error when both providers fail")
	}
}

func TestGetSignals(t *testing.T) {
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 100 + float64(i) // steady uptrend
	}
	fake := &fakeMarket{bars: map[string][]models.Bar{"GC=F": dailyBars("2024-01-01", closes...)}}
	uc := NewSignalsUseCase(newMarketUC(t, fake))

	report, err := uc.GetSignals(context.Background(), GetSignalsParams{Symbol: "GC=F", Range: domrepo.Range1Y})
	if err != nil {
		t.Fatalf("GetSignals: %v", err)
	}
	if len(report.SMA20) != 80 {
		t.Fatalf("sma20 length = %d, want 80", len(report.SMA20))
	}
	if report.SMA20[18].Value != nil || report.SMA20[19].Value == nil {
		t.Fatal("sma20 warmup boundary wrong")
	}
	if report.LastRSI == nil || *report.LastRSI != 100 {
		t.Fatalf("steady uptrend should pin RSI at 100, got %v", report.LastRSI)
	}
	if len(report.Signals) != 5 {
		t.Fatalf("expected 5 named signals, got %d", len(report.Signals))
	}
	// RSI 100 reads strong_sell but every MA reads buy-side; the average
	// lands neutral-or-better, never strong_sell.
	if report.Overall == models.StrongSell {
		t.Fatal("overall should not be strong_sell in an uptrend")
	}
}

func TestSimulateRejectsBadWeights(t *testing.T) {
	uc := NewSimulatorUseCase(newMarketUC(t, &fakeMarket{}), 0.05)
	_, err := uc.Simulate(context.Background(), &models.SimulateRequest{
		Amount:    1000,
		StartDate: "2024-01-01",
		EndDate:   "2024-06-01",
		Allocations: []models.Allocation{
			{Symbol: "GLD", Weight: 60},
			{Symbol: "SPY", Weight: 30},
		},
	})
	if err == nil {
		t.Fatal("expected weight-sum error")
	}
}

func TestSimulateBlends(t *testing.T) {
	fake := &fakeMarket{bars: map[string][]models.Bar{
		"GLD": dailyBars("2024-01-01", 100, 110, 120),
		"SPY": dailyBars("2024-01-01", 200, 200, 200),
	}}
	uc := NewSimulatorUseCase(newMarketUC(t, fake), 0.05)

	res, err := uc.Simulate(context.Background(), &models.SimulateRequest{
		Amount:    1000,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-03",
		Allocations: []models.Allocation{
			{Symbol: "GLD", Weight: 50},
			{Symbol: "SPY", Weight: 50},
		},
	})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	// GLD half grows 20%, SPY half is flat: 500*1.2 + 500 = 1100.
	last := res.Series[len(res.Series)-1].Value
	if last != 1100 {
		t.Fatalf("final value = %v, want 1100", last)
	}
	if res.TotalReturn != 10 {
		t.Fatalf("total return = %v, want 10", res.TotalReturn)
	}
}

func TestCorrelateDropsFailedSymbols(t *testing.T) {
	fake := &fakeMarket{bars: map[string][]models.Bar{
		"GLD": dailyBars("2024-01-01", 100, 110, 99, 120),
		"IAU": dailyBars("2024-01-01", 10, 11, 9.9, 12),
	}}
	uc := NewComparisonUseCase(newMarketUC(t, fake), testLogger(t))

	m, err := uc.Correlate(context.Background(), CorrelateParams{
		Symbols: []string{"GLD", "MISSING", "IAU"},
		Range:   domrepo.Range1Y,
	})
	if err != nil {
		t.Fatalf("Correlate: %v", err)
	}
	if len(m.Symbols) != 2 {
		t.Fatalf("expected 2 surviving symbols, got %v", m.Symbols)
	}
	if m.Matrix[0][1] < 0.999 {
		t.Fatalf("proportional series should correlate near 1, got %v", m.Matrix[0][1])
	}
}

func TestCompare(t *testing.T) {
	fake := &fakeMarket{bars: map[string][]models.Bar{
		"GLD": dailyBars("2024-01-01", 100, 110),
		"SPY": dailyBars("2024-01-01", 400, 380),
	}}
	uc := NewComparisonUseCase(newMarketUC(t, fake), testLogger(t))

	rows, err := uc.Compare(context.Background(), CompareParams{
		Symbols: []string{"GLD", "SPY"},
		Range:   domrepo.Range1Y,
	})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].Values["GLD"] != 10 || rows[1].Values["SPY"] != -5 {
		t.Fatalf("unexpected rebased values: %+v", rows[1].Values)
	}
}

func TestLiquiditySnapshotAndHistory(t *testing.T) {
	fake := &fakeMarket{
		quotes: map[string]*models.Quote{
			"GC=F": {Symbol: "GC=F", Price: 2000, Volume: 10},
			"GLD":  {Symbol: "GLD", Price: 180, Volume: 5000},
		},
		bars: map[string][]models.Bar{
			"GC=F": dailyBars("2024-01-01", 2000, 2010, 2020),
			"GLD":  dailyBars("2024-01-01", 180, 181, 182),
		},
	}
	agg := liquidity.NewAggregator(
		refdata.GoldInstruments(),
		refdata.SourceBreakdown(),
		refdata.RegionData(),
		refdata.MarketEvents(),
	)
	uc := NewLiquidityUseCase(newMarketUC(t, fake), agg, []string{"GC=F", "GLD"}, nil, 0, testLogger(t))

	snap, err := uc.GetSnapshot(context.Background())
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if snap.TotalDollarVolume != 2_900_000 {
		t.Fatalf("snapshot total = %v", snap.TotalDollarVolume)
	}

	hist, err := uc.GetHistory(context.Background(), GetLiquidityHistoryParams{Range: domrepo.Range1Y})
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(hist.History) != 3 {
		t.Fatalf("expected 3 days, got %d", len(hist.History))
	}
	if hist.Summary.TradingDays != 3 {
		t.Fatalf("trading days = %d", hist.Summary.TradingDays)
	}
	// Too few observations for spike detection.
	if len(hist.Spikes) != 0 {
		t.Fatalf("expected no spikes, got %d", len(hist.Spikes))
	}
}
