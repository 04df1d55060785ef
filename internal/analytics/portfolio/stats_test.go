package portfolio

import (
	"math"
	"testing"
)

func TestCAGRDoublingOverOneYear(t *testing.T) {
	got := CAGR(1000, 2000, 1)
	if math.Abs(got-100) > 1e-9 {
		t.Fatalf("doubling over one year should be 100%%, got %v", got)
	}
}

func TestCAGRDegenerateInputs(t *testing.T) {
	if got := CAGR(1000, 2000, 0); got != 0 {
		t.Fatalf("zero years: got %v", got)
	}
	if got := CAGR(0, 2000, 1); got != 0 {
		t.Fatalf("zero start value: got %v", got)
	}
	if got := CAGR(1000, 2000, -1); got != 0 {
		t.Fatalf("negative years: got %v", got)
	}
}

func TestMaxDrawdownRisingSeriesIsZero(t *testing.T) {
	if got := MaxDrawdown([]float64{1, 2, 3, 4, 5}); got != 0 {
		t.Fatalf("strictly increasing series should have drawdown 0, got %v", got)
	}
}

func TestMaxDrawdownHalving(t *testing.T) {
	if got := MaxDrawdown([]float64{100, 50}); got != 50 {
		t.Fatalf("[100, 50] should have drawdown 50, got %v", got)
	}
}

func TestMaxDrawdownTracksRunningPeak(t *testing.T) {
	// peak moves to 120, trough at 60 -> (120-60)/120 = 50%
	got := MaxDrawdown([]float64{100, 120, 90, 60, 110})
	if math.Abs(got-50) > 1e-9 {
		t.Fatalf("got %v want 50", got)
	}
}

func TestDailyReturns(t *testing.T) {
	got := DailyReturns([]float64{100, 110, 99})
	if len(got) != 2 {
		t.Fatalf("expected 2 returns, got %d", len(got))
	}
	if math.Abs(got[0]-0.1) > 1e-12 {
		t.Fatalf("first return: got %v", got[0])
	}
	if math.Abs(got[1]-(-0.1)) > 1e-12 {
		t.Fatalf("second return: got %v", got[1])
	}

	if DailyReturns([]float64{100}) != nil {
		t.Fatalf("single observation should yield no returns")
	}
}

func TestVolatilityFewObservations(t *testing.T) {
	if got := Volatility(nil); got != 0 {
		t.Fatalf("nil returns: got %v", got)
	}
	if got := Volatility([]float64{0.01}); got != 0 {
		t.Fatalf("single return: got %v", got)
	}
}

func TestVolatilitySampleStdDev(t *testing.T) {
	// returns {0.01, -0.01}: mean 0, sample variance = 2*(0.01^2)/1
	want := math.Sqrt(2*0.01*0.01) * math.Sqrt(252) * 100
	got := Volatility([]float64{0.01, -0.01})
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestSharpeZeroVolatility(t *testing.T) {
	if got := SharpeRatio([]float64{0.01, 0.01, 0.01}, DefaultRiskFreeRate); got != 0 {
		t.Fatalf("constant returns have zero volatility, expected Sharpe 0, got %v", got)
	}
}

func TestSharpeRatio(t *testing.T) {
	returns := []float64{0.01, -0.01, 0.02, 0.0}
	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))
	vol := Volatility(returns) / 100
	want := (mean*252 - DefaultRiskFreeRate) / vol

	got := SharpeRatio(returns, DefaultRiskFreeRate)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v want %v", got, want)
	}
}
