package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"GoldPulse/internal/domain/models"
	domrepo "GoldPulse/internal/domain/repository"
	"GoldPulse/pkg/cache"
	"GoldPulse/pkg/logger"
)

// Quoter is the minimal quote-only surface implemented by the fallback
// provider.
type Quoter interface {
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
}

// CacheTTL groups the freshness classes used across market endpoints.
type CacheTTL struct {
	Quote    time.Duration
	Intraday time.Duration
	Daily    time.Duration
	Gold     time.Duration
}

// MarketUseCase serves quotes and historical bars with a cache in front of
// the upstream provider and an optional fallback quote source.
type MarketUseCase struct {
	market   domrepo.MarketData
	fallback Quoter // nil when no fallback is configured
	cache    cache.Service
	ttl      CacheTTL
	log      *logger.Logger
	metrics  domrepo.Metrics
}

func NewMarketUseCase(
	market domrepo.MarketData,
	fallback Quoter,
	c cache.Service,
	ttl CacheTTL,
	log *logger.Logger,
	metrics domrepo.Metrics,
) *MarketUseCase {
	return &MarketUseCase{
		market:   market,
		fallback: fallback,
		cache:    c,
		ttl:      ttl,
		log:      log,
		metrics:  metrics,
	}
}

// cached runs fill on a cache miss and stores its result. Cache failures
// never fail the request; the upstream result is served regardless.
func cached[T any](ctx context.Context, uc *MarketUseCase, key string, ttl time.Duration, fill func() (T, error)) (T, error) {
	var out T
	if uc.cache != nil {
		if err := uc.cache.Get(ctx, key, &out); err == nil {
			uc.metrics.RecordCache("hit")
			return out, nil
		}
		uc.metrics.RecordCache("miss")
	}

	out, err := fill()
	if err != nil {
		return out, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, out, ttl); err != nil {
			uc.log.Warn("cache set failed", logger.String("key", key), logger.Error(err))
		}
	}
	return out, nil
}

// GetQuote returns the live quote for one symbol, trying the fallback
// provider when the primary declines.
func (uc *MarketUseCase) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}

	return cached(ctx, uc, "quote:"+symbol, uc.ttl.Quote, func() (*models.Quote, error) {
		q, err := uc.market.Quote(ctx, symbol)
		if err == nil {
			return q, nil
		}
		if uc.fallback == nil {
			return nil, err
		}
		uc.log.Warn("primary quote failed, trying fallback",
			logger.String("symbol", symbol),
			logger.Error(err),
		)
		fq, ferr := uc.fallback.Quote(ctx, symbol)
		if ferr != nil {
			// Surface the primary error; the fallback failing is secondary.
			return nil, err
		}
		return fq, nil
	})
}

// GetBatchQuotes fetches quotes for a comma-separated symbol list. Unknown
// symbols are dropped rather than failing the batch.
func (uc *MarketUseCase) GetBatchQuotes(ctx context.Context, symbols []string) ([]models.Quote, error) {
	cleaned := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("at least one symbol required")
	}

	key := "batch:" + strings.Join(cleaned, ",")
	return cached(ctx, uc, key, uc.ttl.Quote, func() ([]models.Quote, error) {
		return uc.market.BatchQuotes(ctx, cleaned)
	})
}

// GetHistoricalParams selects a bar series. Interval is optional; when
// empty the range's default granularity is used.
type GetHistoricalParams struct {
	Symbol   string
	Range    domrepo.Range
	Interval domrepo.Interval
}

func (uc *MarketUseCase) GetHistorical(ctx context.Context, p GetHistoricalParams) ([]models.Bar, error) {
	symbol := strings.ToUpper(strings.TrimSpace(p.Symbol))
	if symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	if !domrepo.IsValidRange(p.Range) {
		p.Range = domrepo.DefaultRange()
	}
	interval := p.Interval
	if interval == "" {
		interval = domrepo.IntervalFor(p.Range)
	}

	// Intraday granularity goes stale much faster than daily bars.
	ttl := uc.ttl.Daily
	switch interval {
	case domrepo.Interval1m, domrepo.Interval5m, domrepo.Interval15m:
		ttl = uc.ttl.Intraday
	}

	key := fmt.Sprintf("hist:%s:%s:%s", symbol, p.Range, interval)
	return cached(ctx, uc, key, ttl, func() ([]models.Bar, error) {
		return uc.market.Historical(ctx, symbol, p.Range, interval)
	})
}

// GoldPrice is the headline gold quote plus its intraday series.
type GoldPrice struct {
	Quote    *models.Quote `json:"quote"`
	Intraday []models.Bar  `json:"intraday"`
}

// GetGoldPrice returns the COMEX front-month quote with its current-day
// price path.
func (uc *MarketUseCase) GetGoldPrice(ctx context.Context, symbol string) (*GoldPrice, error) {
	return cached(ctx, uc, "gold:price:"+symbol, uc.ttl.Gold, func() (*GoldPrice, error) {
		q, err := uc.GetQuote(ctx, symbol)
		if err != nil {
			return nil, fmt.Errorf("gold quote: %w", err)
		}
		bars, err := uc.GetHistorical(ctx, GetHistoricalParams{Symbol: symbol, Range: domrepo.Range1D})
		if err != nil {
			uc.log.Warn("gold intraday fetch failed", logger.Error(err))
			bars = nil
		}
		return &GoldPrice{Quote: q, Intraday: bars}, nil
	})
}
