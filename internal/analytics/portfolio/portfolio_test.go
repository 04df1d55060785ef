package portfolio

import (
	"errors"
	"math"
	"testing"
	"time"

	"GoldPulse/internal/domain/models"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func bars(closes ...float64) []models.Bar {
	out := make([]models.Bar, len(closes))
	for i, c := range closes {
		out[i] = models.Bar{Date: day(i), Close: c}
	}
	return out
}

func TestSimulateBlendedValue(t *testing.T) {
	// A doubles, B halves, C flat; weights 50/30/20 on 1000:
	// day 1 value = 1000*(0.5*2 + 0.3*0.5 + 0.2*1) = 1350
	in := Input{
		Amount: 1000,
		Start:  day(0),
		End:    day(1),
		Positions: []Position{
			{Symbol: "A", Weight: 50, Bars: bars(100, 200)},
			{Symbol: "B", Weight: 30, Bars: bars(50, 25)},
			{Symbol: "C", Weight: 20, Bars: bars(80, 80)},
		},
	}

	res, err := Simulate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Series) != 2 {
		t.Fatalf("expected 2 value points, got %d", len(res.Series))
	}
	if math.Abs(res.Series[0].Value-1000) > 1e-9 {
		t.Fatalf("day 0 value: got %v want 1000", res.Series[0].Value)
	}
	if math.Abs(res.Series[1].Value-1350) > 1e-9 {
		t.Fatalf("day 1 value: got %v want 1350", res.Series[1].Value)
	}
	if math.Abs(res.TotalReturn-35) > 1e-9 {
		t.Fatalf("total return: got %v want 35", res.TotalReturn)
	}
}

func TestSimulateInsufficientData(t *testing.T) {
	in := Input{
		Amount: 1000,
		Start:  day(0),
		End:    day(5),
		Positions: []Position{
			{Symbol: "A", Weight: 50, Bars: bars(100, 110, 120, 130, 140, 150)},
			{Symbol: "B", Weight: 50, Bars: bars(100)}, // one bar only
		},
	}

	_, err := Simulate(in)
	var ide *InsufficientDataError
	if !errors.As(err, &ide) {
		t.Fatalf("expected InsufficientDataError, got %v", err)
	}
	if ide.Symbol != "B" {
		t.Fatalf("expected symbol B, got %s", ide.Symbol)
	}
}

func TestSimulateWindowFiltering(t *testing.T) {
	// bars outside [start, end] must not contribute; the base price is the
	// first bar inside the window
	all := bars(10, 100, 110, 999)
	in := Input{
		Amount: 1000,
		Start:  day(1),
		End:    day(2),
		Positions: []Position{
			{Symbol: "A", Weight: 100, Bars: all},
		},
	}

	res, err := Simulate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Series) != 2 {
		t.Fatalf("expected 2 points inside window, got %d", len(res.Series))
	}
	if math.Abs(res.Series[1].Value-1100) > 1e-9 {
		t.Fatalf("rebased value: got %v want 1100", res.Series[1].Value)
	}
}

func TestSimulatePositionalAlignment(t *testing.T) {
	// B has one fewer bar: the blended series is truncated to minLen
	in := Input{
		Amount: 1000,
		Start:  day(0),
		End:    day(3),
		Positions: []Position{
			{Symbol: "A", Weight: 50, Bars: bars(100, 110, 120, 130)},
			{Symbol: "B", Weight: 50, Bars: bars(100, 105, 115)},
		},
	}

	res, err := Simulate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Series) != 3 {
		t.Fatalf("expected series truncated to 3, got %d", len(res.Series))
	}
}

func TestSimulateDrawdownFreeGrowth(t *testing.T) {
	in := Input{
		Amount: 500,
		Start:  day(0),
		End:    day(364),
		Positions: []Position{
			{Symbol: "A", Weight: 100, Bars: bars(100, 101, 102, 103, 104)},
		},
	}

	res, err := Simulate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MaxDrawdown != 0 {
		t.Fatalf("rising series should have no drawdown, got %v", res.MaxDrawdown)
	}
	if res.CAGR <= 0 {
		t.Fatalf("expected positive CAGR, got %v", res.CAGR)
	}
}
