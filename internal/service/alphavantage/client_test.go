package alphavantage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type nopMetrics struct{}

func (nopMetrics) RecordUpstreamFetch(string, string) {}
func (nopMetrics) RecordCache(string)                 {}
func (nopMetrics) RecordRateLimited()                 {}
func (nopMetrics) RecordLastPrice(string, float64)    {}
func (nopMetrics) RecordLatency(string, float64)      {}

const quotePayload = `{
  "Global Quote": {
    "01. symbol": "GLD",
    "03. high": "224.50",
    "04. low": "221.10",
    "05. price": "223.75",
    "06. volume": "6512345",
    "08. previous close": "222.00",
    "09. change": "1.75",
    "10. change percent": "0.7883%"
  }
}`

func TestQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("function"); got != "GLOBAL_QUOTE" {
			t.Errorf("function = %q", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "demo" {
			t.Errorf("apikey = %q", got)
		}
		w.Write([]byte(quotePayload))
	}))
	defer srv.Close()

	c := NewClient(&Config{APIKey: "demo", BaseURL: srv.URL, Timeout: 2 * time.Second}, nopMetrics{})
	q, err := c.Quote(context.Background(), "GLD")
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if q.Symbol != "GLD" || q.Price != 223.75 {
		t.Fatalf("unexpected quote: %+v", q)
	}
	if q.ChangePercent != 0.7883 {
		t.Fatalf("change percent = %v", q.ChangePercent)
	}
	if q.Volume != 6512345 {
		t.Fatalf("volume = %d", q.Volume)
	}
}

func TestQuoteEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Global Quote": {}}`))
	}))
	defer srv.Close()

	c := NewClient(&Config{APIKey: "demo", BaseURL: srv.URL}, nopMetrics{})
	if _, err := c.Quote(context.Background(), "GLD"); err == nil {
		t.Fatal("expected error for empty quote")
	}
}
