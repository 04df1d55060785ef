package indicator

import (
	"testing"

	"GoldPulse/internal/domain/models"
)

func TestFromRSIThresholds(t *testing.T) {
	cases := []struct {
		rsi  float64
		want models.SignalStrength
	}{
		{10, models.StrongBuy},
		{20, models.StrongBuy},
		{25, models.Buy},
		{30, models.Buy},
		{50, models.Neutral},
		{69.9, models.Neutral},
		{70, models.Sell},
		{79.9, models.Sell},
		{80, models.StrongSell},
		{95, models.StrongSell},
	}
	for _, c := range cases {
		if got := FromRSI(c.rsi); got != c.want {
			t.Fatalf("FromRSI(%v) = %s, want %s", c.rsi, got, c.want)
		}
	}
}

func TestFromMAThresholds(t *testing.T) {
	cases := []struct {
		price, ma float64
		want      models.SignalStrength
	}{
		{106, 100, models.StrongBuy}, // +6%
		{103, 100, models.Buy},       // +3%
		{100, 100, models.Neutral},   // exactly on the average
		{98, 100, models.Sell},       // -2%
		{94, 100, models.StrongSell}, // -6%
	}
	for _, c := range cases {
		if got := FromMA(c.price, c.ma); got != c.want {
			t.Fatalf("FromMA(%v, %v) = %s, want %s", c.price, c.ma, got, c.want)
		}
	}
}

func TestAggregateOpposingSignalsCancel(t *testing.T) {
	got := Aggregate([]models.SignalStrength{models.StrongBuy, models.StrongSell})
	if got != models.Neutral {
		t.Fatalf("opposing signals should cancel to neutral, got %s", got)
	}
}

func TestAggregateThresholds(t *testing.T) {
	cases := []struct {
		in   []models.SignalStrength
		want models.SignalStrength
	}{
		{[]models.SignalStrength{models.StrongBuy, models.StrongBuy}, models.StrongBuy},
		{[]models.SignalStrength{models.StrongBuy, models.Buy}, models.StrongBuy}, // avg 1.5
		{[]models.SignalStrength{models.Buy, models.Neutral}, models.Buy},         // avg 0.5
		{[]models.SignalStrength{models.Buy, models.Sell}, models.Neutral},
		{[]models.SignalStrength{models.Sell, models.Neutral}, models.Sell},
		{[]models.SignalStrength{models.StrongSell, models.Sell}, models.StrongSell},
	}
	for _, c := range cases {
		if got := Aggregate(c.in); got != c.want {
			t.Fatalf("Aggregate(%v) = %s, want %s", c.in, got, c.want)
		}
	}
}
