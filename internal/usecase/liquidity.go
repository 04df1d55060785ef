package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"GoldPulse/internal/analytics/liquidity"
	"GoldPulse/internal/domain/models"
	domrepo "GoldPulse/internal/domain/repository"
	"GoldPulse/pkg/cache"
	"GoldPulse/pkg/logger"
	"GoldPulse/pkg/util"
)

// LiquidityUseCase serves the gold-market liquidity views over the fixed
// instrument basket.
type LiquidityUseCase struct {
	market     *MarketUseCase
	aggregator *liquidity.Aggregator
	symbols    []string
	cache      cache.Service
	goldTTL    time.Duration
	log        *logger.Logger
}

func NewLiquidityUseCase(
	market *MarketUseCase,
	aggregator *liquidity.Aggregator,
	symbols []string,
	c cache.Service,
	goldTTL time.Duration,
	log *logger.Logger,
) *LiquidityUseCase {
	return &LiquidityUseCase{
		market:     market,
		aggregator: aggregator,
		symbols:    symbols,
		cache:      c,
		goldTTL:    goldTTL,
		log:        log,
	}
}

// GetSnapshot builds the live liquidity view from current basket quotes.
func (uc *LiquidityUseCase) GetSnapshot(ctx context.Context) (*models.LiquiditySnapshot, error) {
	const key = "liquidity:snapshot"
	var snap models.LiquiditySnapshot
	if uc.cache != nil {
		if err := uc.cache.Get(ctx, key, &snap); err == nil {
			return &snap, nil
		}
	}

	quotes, err := uc.market.GetBatchQuotes(ctx, uc.symbols)
	if err != nil {
		return nil, fmt.Errorf("basket quotes: %w", err)
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("liquidity: no basket quote available")
	}

	bySymbol := make(map[string]*models.Quote, len(quotes))
	for i := range quotes {
		bySymbol[quotes[i].Symbol] = &quotes[i]
	}

	history := uc.recentVolumes(ctx)
	out := uc.aggregator.Snapshot(bySymbol, history)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, out, uc.goldTTL); err != nil {
			uc.log.Warn("cache set failed", logger.String("key", key), logger.Error(err))
		}
	}
	return out, nil
}

// recentVolumes collects the trailing month of futures volume for the
// snapshot's sparkline. Best effort; the snapshot works without it.
func (uc *LiquidityUseCase) recentVolumes(ctx context.Context) []models.VolumeObservation {
	if len(uc.symbols) == 0 {
		return nil
	}
	bars, err := uc.market.GetHistorical(ctx, GetHistoricalParams{
		Symbol:   uc.symbols[0],
		Range:    domrepo.Range1M,
		Interval: domrepo.Interval1d,
	})
	if err != nil {
		uc.log.Warn("volume history fetch failed", logger.Error(err))
		return nil
	}
	out := make([]models.VolumeObservation, 0, len(bars))
	for _, b := range bars {
		out = append(out, models.VolumeObservation{
			Date:   util.DayKey(b.Date),
			Volume: b.Volume,
		})
	}
	return out
}

type GetLiquidityHistoryParams struct {
	Range      domrepo.Range
	SpikeLimit int // 0 keeps the configured default
}

// GetHistory builds the full historical liquidity response: per-day dollar
// volume with source splits, the range summary, regional demand scaled to
// the range total, and detected volume spikes.
func (uc *LiquidityUseCase) GetHistory(ctx context.Context, p GetLiquidityHistoryParams) (*models.LiquidityHistory, error) {
	if !domrepo.IsValidRange(p.Range) {
		p.Range = domrepo.Range1Y
	}
	interval := domrepo.LiquidityIntervalFor(p.Range)

	key := fmt.Sprintf("liquidity:history:%s:%d", p.Range, p.SpikeLimit)
	var hit models.LiquidityHistory
	if uc.cache != nil {
		if err := uc.cache.Get(ctx, key, &hit); err == nil {
			return &hit, nil
		}
	}

	bars := make(map[string][]models.Bar, len(uc.symbols))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, symbol := range uc.symbols {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			series, err := uc.market.GetHistorical(ctx, GetHistoricalParams{
				Symbol:   symbol,
				Range:    p.Range,
				Interval: interval,
			})
			if err != nil {
				uc.log.Warn("liquidity history fetch failed",
					logger.String("symbol", symbol),
					logger.Error(err),
				)
				return
			}
			mu.Lock()
			bars[symbol] = series
			mu.Unlock()
		}(symbol)
	}
	wg.Wait()

	if len(bars) == 0 {
		return nil, fmt.Errorf("liquidity: no instrument history available")
	}

	days := uc.aggregator.History(bars)
	summary := uc.aggregator.Summarize(days)
	spikes := uc.aggregator.Spikes(days)
	if p.SpikeLimit > 0 && len(spikes) > p.SpikeLimit {
		spikes = spikes[:p.SpikeLimit]
	}

	out := &models.LiquidityHistory{
		History:   days,
		Summary:   summary,
		Regions:   uc.aggregator.Regions(summary.TotalVolume),
		Spikes:    spikes,
		Range:     string(p.Range),
		Timestamp: time.Now().UnixMilli(),
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, out, uc.goldTTL); err != nil {
			uc.log.Warn("cache set failed", logger.String("key", key), logger.Error(err))
		}
	}
	return out, nil
}
