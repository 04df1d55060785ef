package indicator

import "GoldPulse/internal/domain/models"

// FromRSI maps an RSI reading to a discrete signal. Oversold readings
// favor buying, overbought favor selling.
func FromRSI(rsi float64) models.SignalStrength {
	switch {
	case rsi <= 20:
		return models.StrongBuy
	case rsi <= 30:
		return models.Buy
	case rsi >= 80:
		return models.StrongSell
	case rsi >= 70:
		return models.Sell
	default:
		return models.Neutral
	}
}

// FromMA maps the percent deviation of price from a moving average to a
// discrete signal. Exactly on the average is neutral.
func FromMA(price, ma float64) models.SignalStrength {
	d := (price - ma) / ma * 100
	switch {
	case d > 5:
		return models.StrongBuy
	case d > 0:
		return models.Buy
	case d < -5:
		return models.StrongSell
	case d < 0:
		return models.Sell
	default:
		return models.Neutral
	}
}

// Aggregate averages the integer scores of the given signals and maps the
// mean back to a discrete signal. Callers must supply at least one signal;
// an empty slice yields Neutral.
func Aggregate(signals []models.SignalStrength) models.SignalStrength {
	if len(signals) == 0 {
		return models.Neutral
	}

	var sum int
	for _, s := range signals {
		sum += s.Score()
	}
	avg := float64(sum) / float64(len(signals))

	switch {
	case avg >= 1.5:
		return models.StrongBuy
	case avg >= 0.5:
		return models.Buy
	case avg <= -1.5:
		return models.StrongSell
	case avg <= -0.5:
		return models.Sell
	default:
		return models.Neutral
	}
}
