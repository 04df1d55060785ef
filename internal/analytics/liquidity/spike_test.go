package liquidity

import (
	"fmt"
	"testing"

	"GoldPulse/internal/domain/models"
	"GoldPulse/internal/refdata"
)

// flatDays builds n days of constant volume starting 2024-03-01.
func flatDays(n int, volume float64) []models.LiquidityDay {
	days := make([]models.LiquidityDay, n)
	for i := range days {
		days[i] = models.LiquidityDay{
			Date:        fmt.Sprintf("2024-03-%02d", i+1),
			TotalVolume: volume,
		}
	}
	return days
}

func TestSpikesRequireTenObservations(t *testing.T) {
	agg := newTestAggregator()
	days := flatDays(9, 100)
	days[4].TotalVolume = 10_000

	if got := agg.Spikes(days); len(got) != 0 {
		t.Fatalf("expected no spikes under 10 observations, got %d", len(got))
	}
}

func TestSpikesZeroVariance(t *testing.T) {
	agg := newTestAggregator()
	if got := agg.Spikes(flatDays(20, 100)); len(got) != 0 {
		t.Fatalf("constant volume should give no spikes, got %d", len(got))
	}
}

func TestSpikesDetectOutlier(t *testing.T) {
	agg := newTestAggregator()
	days := flatDays(20, 100)
	days[14].TotalVolume = 1000 // 2024-03-15

	spikes := agg.Spikes(days)
	if len(spikes) != 1 {
		t.Fatalf("expected 1 spike, got %d", len(spikes))
	}
	if spikes[0].Date != "2024-03-15" {
		t.Fatalf("spike date = %q", spikes[0].Date)
	}
	if spikes[0].Deviation <= 1.2 {
		t.Fatalf("deviation = %v, should exceed threshold", spikes[0].Deviation)
	}
}

func TestSpikesSortedAndLimited(t *testing.T) {
	agg := newTestAggregator(WithSpikeLimit(2))
	days := flatDays(30, 100)
	days[5].TotalVolume = 5000
	days[10].TotalVolume = 9000
	days[20].TotalVolume = 7000

	spikes := agg.Spikes(days)
	if len(spikes) != 2 {
		t.Fatalf("expected 2 spikes after limit, got %d", len(spikes))
	}
	if spikes[0].TotalVolume != 9000 || spikes[1].TotalVolume != 7000 {
		t.Fatalf("spikes not sorted by deviation: %v then %v",
			spikes[0].TotalVolume, spikes[1].TotalVolume)
	}
}

func TestSpikesUnmatchedGetGenericDescription(t *testing.T) {
	agg := NewAggregator(refdata.GoldInstruments(), refdata.SourceBreakdown(), nil, nil)
	days := flatDays(20, 100)
	days[14].TotalVolume = 1000

	spikes := agg.Spikes(days)
	if len(spikes) != 1 {
		t.Fatalf("expected 1 spike, got %d", len(spikes))
	}
	if spikes[0].Event != nil {
		t.Fatalf("empty catalog should not match, got %+v", spikes[0].Event)
	}
	if spikes[0].Title != "Unusual volume spike" || spikes[0].Description == "" {
		t.Fatalf("expected generic title and description, got %q / %q",
			spikes[0].Title, spikes[0].Description)
	}
}

func TestMatchEventExactDate(t *testing.T) {
	agg := newTestAggregator()

	// 2024-04-15 is a catalog date (Iran-Israel escalation).
	ev := agg.matchEvent("2024-04-15")
	if ev == nil {
		t.Fatal("expected a match on the exact catalog date")
	}
	if ev.Date != "2024-04-15" {
		t.Fatalf("matched %q, want 2024-04-15", ev.Date)
	}
}

func TestMatchEventWithinWindow(t *testing.T) {
	agg := newTestAggregator()

	ev := agg.matchEvent("2024-04-18")
	if ev == nil || ev.Date != "2024-04-15" {
		t.Fatalf("expected 2024-04-15 within 3 days, got %+v", ev)
	}
}

func TestMatchEventOutsideWindow(t *testing.T) {
	agg := newTestAggregator()

	// Nearest catalog entries to 2024-04-19 are 2024-04-15 (4 days) and
	// 2024-05-20 (31 days), both out of range.
	if ev := agg.matchEvent("2024-04-19"); ev != nil {
		t.Fatalf("expected no match 4 days out, got %+v", ev)
	}
}

func TestMatchEventPrefersCloserDate(t *testing.T) {
	events := []models.MarketEvent{
		{Date: "2024-03-10", Title: "far"},
		{Date: "2024-03-12", Title: "near"},
	}
	agg := NewAggregator(refdata.GoldInstruments(), refdata.SourceBreakdown(), nil, events)

	ev := agg.matchEvent("2024-03-13")
	if ev == nil || ev.Title != "near" {
		t.Fatalf("expected nearest event, got %+v", ev)
	}
}

func TestMatchEventTieBreaksEarlier(t *testing.T) {
	events := []models.MarketEvent{
		{Date: "2024-03-10", Title: "earlier"},
		{Date: "2024-03-14", Title: "later"},
	}
	agg := NewAggregator(refdata.GoldInstruments(), refdata.SourceBreakdown(), nil, events)

	ev := agg.matchEvent("2024-03-12")
	if ev == nil || ev.Title != "earlier" {
		t.Fatalf("expected earlier event on a tie, got %+v", ev)
	}
}
