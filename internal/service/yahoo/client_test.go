package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"GoldPulse/internal/domain/repository"
	"GoldPulse/pkg/logger"
)

type nopMetrics struct{}

func (nopMetrics) RecordUpstreamFetch(string, string) {}
func (nopMetrics) RecordCache(string)                 {}
func (nopMetrics) RecordRateLimited()                 {}
func (nopMetrics) RecordLastPrice(string, float64)    {}
func (nopMetrics) RecordLatency(string, float64)      {}

const chartPayload = `{
  "chart": {
    "result": [{
      "meta": {
        "symbol": "GC=F",
        "shortName": "Gold Futures",
        "marketState": "REGULAR",
        "regularMarketPrice": 2400.5,
        "chartPreviousClose": 2380.0,
        "regularMarketDayHigh": 2410.0,
        "regularMarketDayLow": 2375.0,
        "regularMarketVolume": 150000,
        "regularMarketTime": 1713185400
      },
      "timestamp": [1713100000, 1713186400, 1713272800],
      "indicators": {
        "quote": [{
          "open":   [2380.0, 2390.0, null],
          "high":   [2395.0, 2412.0, null],
          "low":    [2370.0, 2385.0, null],
          "close":  [2390.0, 2400.5, null],
          "volume": [120000, 150000, null]
        }]
      }
    }],
    "error": null
  }
}`

const errorPayload = `{
  "chart": {
    "result": null,
    "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}
  }
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewClient(&Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, log, nopMetrics{})
}

func TestQuote(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/GC=F" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(chartPayload))
	})

	q, err := c.Quote(context.Background(), "GC=F")
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if q.Symbol != "GC=F" || q.ShortName != "Gold Futures" {
		t.Fatalf("unexpected identity: %+v", q)
	}
	if q.Price != 2400.5 || q.PreviousClose != 2380.0 {
		t.Fatalf("unexpected prices: %+v", q)
	}
	if q.Change != 20.5 {
		t.Fatalf("change = %v, want 20.5", q.Change)
	}
	if q.Timestamp != 1713185400000 {
		t.Fatalf("timestamp = %v, want millis", q.Timestamp)
	}
}

func TestQuoteNoData(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(errorPayload))
	})

	if _, err := c.Quote(context.Background(), "NOPE"); err == nil {
		t.Fatal("expected error for delisted symbol")
	}
}

func TestHistoricalSkipsNullCloses(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("interval"); got != "1d" {
			t.Errorf("interval = %q", got)
		}
		if got := r.URL.Query().Get("range"); got != "1mo" {
			t.Errorf("range = %q", got)
		}
		w.Write([]byte(chartPayload))
	})

	bars, err := c.Historical(context.Background(), "GC=F", repository.Range1M, repository.Interval1d)
	if err != nil {
		t.Fatalf("Historical: %v", err)
	}
	// Third tick has a null close and must be dropped.
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[0].Close != 2390.0 || bars[1].Close != 2400.5 {
		t.Fatalf("unexpected closes: %+v", bars)
	}
	if bars[1].Volume != 150000 {
		t.Fatalf("volume = %d", bars[1].Volume)
	}
}

func TestBatchQuotesDropsFailures(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v8/finance/chart/BAD" {
			w.Write([]byte(errorPayload))
			return
		}
		w.Write([]byte(chartPayload))
	})

	quotes, err := c.BatchQuotes(context.Background(), []string{"GC=F", "BAD", "GLD"})
	if err != nil {
		t.Fatalf("BatchQuotes: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
}
