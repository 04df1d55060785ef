// Package alphavantage is the fallback quote source used when Yahoo
// declines a symbol. Only the GLOBAL_QUOTE function is wired; historical
// bars always come from the primary provider.
package alphavantage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"GoldPulse/internal/domain/models"
	"GoldPulse/internal/domain/repository"
	xhttp "GoldPulse/pkg/http"
)

var ErrNoQuote = errors.New("alphavantage: no quote in response")

// Config holds the fallback provider's settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	http    *xhttp.Client
	baseURL string
	apiKey  string
	metrics repository.Metrics
}

func NewClient(cfg *Config, metrics repository.Metrics) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://www.alphavantage.co"
	}
	return &Client{
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		metrics: metrics,
	}
}

// globalQuote mirrors Alpha Vantage's GLOBAL_QUOTE payload. Every value is
// a string; the change-percent field carries a trailing percent sign.
type globalQuote struct {
	Quote struct {
		Symbol        string `json:"01. symbol"`
		High          string `json:"03. high"`
		Low           string `json:"04. low"`
		Price         string `json:"05. price"`
		Volume        string `json:"06. volume"`
		PreviousClose string `json:"08. previous close"`
		Change        string `json:"09. change"`
		ChangePercent string `json:"10. change percent"`
	} `json:"Global Quote"`
}

func (c *Client) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	var out globalQuote
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/query",
		QueryParams: map[string][]string{
			"function": {"GLOBAL_QUOTE"},
			"symbol":   {symbol},
			"apikey":   {c.apiKey},
		},
	}, &out)
	if err != nil {
		c.metrics.RecordUpstreamFetch("global_quote", "error")
		return nil, fmt.Errorf("alphavantage quote %s: %w", symbol, err)
	}
	if out.Quote.Symbol == "" || out.Quote.Price == "" {
		c.metrics.RecordUpstreamFetch("global_quote", "empty")
		return nil, fmt.Errorf("alphavantage quote %s: %w", symbol, ErrNoQuote)
	}
	c.metrics.RecordUpstreamFetch("global_quote", "ok")

	q := &models.Quote{
		Symbol:        out.Quote.Symbol,
		ShortName:     out.Quote.Symbol,
		Price:         parseFloat(out.Quote.Price),
		PreviousClose: parseFloat(out.Quote.PreviousClose),
		Change:        parseFloat(out.Quote.Change),
		ChangePercent: parseFloat(strings.TrimSuffix(out.Quote.ChangePercent, "%")),
		DayHigh:       parseFloat(out.Quote.High),
		DayLow:        parseFloat(out.Quote.Low),
		Volume:        parseInt(out.Quote.Volume),
		MarketState:   "UNKNOWN",
		Timestamp:     time.Now().UnixMilli(),
	}
	c.metrics.RecordLastPrice(symbol, q.Price)
	return q, nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func parseInt(s string) int64 {
	v, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return v
}
