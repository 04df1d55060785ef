// Package yahoo fetches quotes and historical bars from the unofficial
// Yahoo Finance v8 chart API.
package yahoo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"GoldPulse/internal/domain/models"
	"GoldPulse/internal/domain/repository"
	xhttp "GoldPulse/pkg/http"
	"GoldPulse/pkg/logger"
)

// ErrNoData is returned when the chart API answers without any usable bars,
// typically for an unknown or delisted symbol.
var ErrNoData = errors.New("yahoo: no data for symbol")

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Config holds the client's connection settings.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client implements repository.MarketData over the v8 chart endpoint.
type Client struct {
	http      *xhttp.Client
	baseURL   string
	userAgent string
	log       *logger.Logger
	metrics   repository.Metrics
}

func NewClient(cfg *Config, log *logger.Logger, metrics repository.Metrics) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://query1.finance.yahoo.com"
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		http:      xhttp.NewClient(xhttp.WithTimeout(timeout)),
		baseURL:   baseURL,
		userAgent: userAgent,
		log:       log,
		metrics:   metrics,
	}
}

// chartResponse mirrors the subset of the v8 chart payload we consume.
// Price arrays use pointers because Yahoo emits JSON nulls for halted or
// missing ticks.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol               string  `json:"symbol"`
				ShortName            string  `json:"shortName"`
				LongName             string  `json:"longName"`
				MarketState          string  `json:"marketState"`
				RegularMarketPrice   float64 `json:"regularMarketPrice"`
				ChartPreviousClose   float64 `json:"chartPreviousClose"`
				PreviousClose        float64 `json:"previousClose"`
				RegularMarketDayHigh float64 `json:"regularMarketDayHigh"`
				RegularMarketDayLow  float64 `json:"regularMarketDayLow"`
				RegularMarketVolume  int64   `json:"regularMarketVolume"`
				RegularMarketTime    int64   `json:"regularMarketTime"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (c *Client) fetchChart(ctx context.Context, symbol string, params map[string][]string) (*chartResponse, error) {
	var out chartResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, symbol),
		Headers:     map[string]string{"User-Agent": c.userAgent},
		QueryParams: params,
	}, &out)
	if err != nil {
		c.metrics.RecordUpstreamFetch("chart", "error")
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}
	if out.Chart.Error != nil {
		c.metrics.RecordUpstreamFetch("chart", "error")
		return nil, fmt.Errorf("yahoo chart %s: %s: %w", symbol, out.Chart.Error.Description, ErrNoData)
	}
	if len(out.Chart.Result) == 0 {
		c.metrics.RecordUpstreamFetch("chart", "empty")
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, ErrNoData)
	}
	c.metrics.RecordUpstreamFetch("chart", "ok")
	return &out, nil
}

// Quote derives the live quote from a one-day chart request's meta block.
func (c *Client) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	start := time.Now()
	resp, err := c.fetchChart(ctx, symbol, map[string][]string{
		"interval": {"1d"},
		"range":    {"1d"},
	})
	if err != nil {
		return nil, err
	}
	c.metrics.RecordLatency("yahoo_quote", time.Since(start).Seconds())

	meta := resp.Chart.Result[0].Meta
	prevClose := meta.ChartPreviousClose
	if meta.PreviousClose > 0 {
		prevClose = meta.PreviousClose
	}

	name := meta.ShortName
	if name == "" {
		name = meta.LongName
	}
	if name == "" {
		name = symbol
	}

	q := &models.Quote{
		Symbol:        meta.Symbol,
		ShortName:     name,
		Price:         meta.RegularMarketPrice,
		PreviousClose: prevClose,
		DayHigh:       meta.RegularMarketDayHigh,
		DayLow:        meta.RegularMarketDayLow,
		Volume:        meta.RegularMarketVolume,
		MarketState:   meta.MarketState,
		Timestamp:     meta.RegularMarketTime * 1000,
	}
	if prevClose > 0 {
		q.Change = q.Price - prevClose
		q.ChangePercent = q.Change / prevClose * 100
	}

	c.metrics.RecordLastPrice(symbol, q.Price)
	return q, nil
}

// BatchQuotes fetches all symbols concurrently. Failed symbols are logged
// and dropped; the result keeps the request order of the survivors.
func (c *Client) BatchQuotes(ctx context.Context, symbols []string) ([]models.Quote, error) {
	results := make([]*models.Quote, len(symbols))

	var wg sync.WaitGroup
	for i, symbol := range symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			q, err := c.Quote(ctx, symbol)
			if err != nil {
				c.log.Warn("batch quote failed",
					logger.String("symbol", symbol),
					logger.Error(err),
				)
				return
			}
			results[i] = q
		}(i, symbol)
	}
	wg.Wait()

	out := make([]models.Quote, 0, len(symbols))
	for _, q := range results {
		if q != nil {
			out = append(out, *q)
		}
	}
	return out, nil
}

// rangeParam maps the dashboard's named windows onto Yahoo's range tokens.
func rangeParam(r repository.Range) string {
	switch r {
	case repository.Range1D:
		return "1d"
	case repository.Range1W:
		return "5d"
	case repository.Range1M:
		return "1mo"
	case repository.Range3M:
		return "3mo"
	case repository.Range6M:
		return "6mo"
	case repository.Range1Y:
		return "1y"
	case repository.Range5Y:
		return "5y"
	case repository.RangeAll:
		return "max"
	default:
		return "1mo"
	}
}

// Historical fetches the bar series for a named range. Ticks with a null
// close are skipped; a null open, high, or low falls back to the close so
// downstream math never sees zeros where Yahoo had gaps.
func (c *Client) Historical(ctx context.Context, symbol string, r repository.Range, interval repository.Interval) ([]models.Bar, error) {
	start := time.Now()
	resp, err := c.fetchChart(ctx, symbol, map[string][]string{
		"interval":       {string(interval)},
		"range":          {rangeParam(r)},
		"includePrePost": {"false"},
	})
	if err != nil {
		return nil, err
	}
	c.metrics.RecordLatency("yahoo_historical", time.Since(start).Seconds())

	result := resp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 || len(result.Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, ErrNoData)
	}
	quote := result.Indicators.Quote[0]

	bars := make([]models.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		bar := models.Bar{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *quote.Close[i],
		}
		bar.Open = deref(at(quote.Open, i), bar.Close)
		bar.High = deref(at(quote.High, i), bar.Close)
		bar.Low = deref(at(quote.Low, i), bar.Close)
		if v := at(quote.Volume, i); v != nil {
			bar.Volume = *v
		}
		bars = append(bars, bar)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, ErrNoData)
	}
	return bars, nil
}

func at[T any](s []*T, i int) *T {
	if i >= len(s) {
		return nil
	}
	return s[i]
}

func deref(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
