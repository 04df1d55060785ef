package repository

import (
	"context"

	"GoldPulse/internal/domain/models"
)

// MarketData retrieves quotes and historical bars from the upstream
// market-data provider. Implementations own all I/O, timeouts, and retries;
// the analytics core only ever sees materialized series.
type MarketData interface {
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
	// BatchQuotes fetches quotes concurrently. Symbols that fail to fetch
	// are silently dropped from the result.
	BatchQuotes(ctx context.Context, symbols []string) ([]models.Quote, error)
	Historical(ctx context.Context, symbol string, r Range, interval Interval) ([]models.Bar, error)
}

// Metrics records operational measurements.
type Metrics interface {
	RecordUpstreamFetch(endpoint, outcome string)
	RecordCache(outcome string)
	RecordRateLimited()
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
