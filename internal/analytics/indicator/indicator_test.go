package indicator

import (
	"math"
	"testing"

	"GoldPulse/internal/domain/models"
)

func TestSMALeadingWindow(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5}
	got := SMA(prices, 3)

	if len(got) != len(prices) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(prices))
	}
	for i := 0; i < 2; i++ {
		if got[i] != nil {
			t.Fatalf("index %d: expected nil, got %v", i, *got[i])
		}
	}
	if got[2] == nil || *got[2] != 2 {
		t.Fatalf("seed mean wrong: %v", got[2])
	}
	if got[4] == nil || *got[4] != 4 {
		t.Fatalf("trailing mean wrong: %v", got[4])
	}
}

func TestSMAShortSeries(t *testing.T) {
	got := SMA([]float64{1, 2}, 5)
	for i, v := range got {
		if v != nil {
			t.Fatalf("index %d: expected nil for series shorter than period", i)
		}
	}
}

func TestEMASeedEqualsSMA(t *testing.T) {
	prices := []float64{10, 11, 12, 13, 14, 15}
	period := 4

	sma := SMA(prices, period)
	ema := EMA(prices, period)

	if ema[period-1] == nil || sma[period-1] == nil {
		t.Fatalf("expected values at seed index")
	}
	if math.Abs(*ema[period-1]-*sma[period-1]) > 1e-12 {
		t.Fatalf("seed mismatch: ema=%v sma=%v", *ema[period-1], *sma[period-1])
	}
}

func TestEMARecurrence(t *testing.T) {
	prices := []float64{2, 4, 6, 12}
	got := EMA(prices, 3)

	// seed = mean(2,4,6) = 4; k = 2/4 = 0.5; next = (12-4)*0.5 + 4 = 8
	if got[2] == nil || *got[2] != 4 {
		t.Fatalf("seed wrong: %v", got[2])
	}
	if got[3] == nil || *got[3] != 8 {
		t.Fatalf("recurrence wrong: %v", got[3])
	}
}

func TestRSIConstantSeriesIs100(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 42
	}
	got := RSI(prices, DefaultRSIPeriod)

	for i := 0; i < DefaultRSIPeriod; i++ {
		if got[i] != nil {
			t.Fatalf("index %d: expected nil before lookback fills", i)
		}
	}
	for i := DefaultRSIPeriod; i < len(got); i++ {
		if got[i] == nil || *got[i] != 100 {
			t.Fatalf("index %d: expected 100 for zero average loss, got %v", i, got[i])
		}
	}
}

func TestRSIAllLosses(t *testing.T) {
	prices := []float64{10, 9, 8, 7, 6}
	got := RSI(prices, 3)

	// no gains in window: avgGain = 0 -> RSI = 0
	if got[3] == nil || *got[3] != 0 {
		t.Fatalf("expected RSI 0 with only losses, got %v", got[3])
	}
}

func TestRSIMixedWindow(t *testing.T) {
	// changes: +2, -1, +2, -1; window of 4 ending at index 4:
	// avgGain = 1, avgLoss = 0.5, RS = 2, RSI = 100 - 100/3
	prices := []float64{10, 12, 11, 13, 12}
	got := RSI(prices, 4)

	want := 100 - 100.0/3.0
	if got[4] == nil || math.Abs(*got[4]-want) > 1e-12 {
		t.Fatalf("got %v want %v", got[4], want)
	}
}

func fptr(v float64) *float64 { return &v }

func TestDetectCrossesIdenticalSeriesEmpty(t *testing.T) {
	s := []*float64{fptr(1), fptr(2), fptr(3), fptr(4)}
	if got := DetectCrosses(s, s); len(got) != 0 {
		t.Fatalf("identical series should never cross, got %v", got)
	}
}

func TestDetectCrossesGoldenAndDeath(t *testing.T) {
	short := []*float64{nil, fptr(1), fptr(3), fptr(1)}
	long := []*float64{nil, fptr(2), fptr(2), fptr(2)}

	got := DetectCrosses(short, long)
	if len(got) != 2 {
		t.Fatalf("expected 2 crosses, got %d", len(got))
	}
	if got[0].Index != 2 || got[0].Kind != models.GoldenCross {
		t.Fatalf("unexpected first cross %+v", got[0])
	}
	if got[1].Index != 3 || got[1].Kind != models.DeathCross {
		t.Fatalf("unexpected second cross %+v", got[1])
	}
}

func TestDetectCrossesEqualityCountsAsBelow(t *testing.T) {
	// prior tick exactly equal, then short above: golden cross
	short := []*float64{fptr(2), fptr(3)}
	long := []*float64{fptr(2), fptr(2)}

	got := DetectCrosses(short, long)
	if len(got) != 1 || got[0].Kind != models.GoldenCross {
		t.Fatalf("expected golden cross on tie-break, got %v", got)
	}
}

func TestLastCross(t *testing.T) {
	short := []*float64{fptr(1), fptr(3), fptr(1)}
	long := []*float64{fptr(2), fptr(2), fptr(2)}

	got := LastCross(short, long)
	if got == nil || got.Kind != models.DeathCross || got.Index != 2 {
		t.Fatalf("expected trailing death cross, got %+v", got)
	}

	if LastCross(short[:1], long[:1]) != nil {
		t.Fatalf("expected nil without any cross")
	}
}
