package models

// SignalStrength is a discrete trading signal reading.
type SignalStrength string

const (
	StrongSell SignalStrength = "strong_sell"
	Sell       SignalStrength = "sell"
	Neutral    SignalStrength = "neutral"
	Buy        SignalStrength = "buy"
	StrongBuy  SignalStrength = "strong_buy"
)

// Score maps a signal to its integer weight used for averaging.
func (s SignalStrength) Score() int {
	switch s {
	case StrongBuy:
		return 2
	case Buy:
		return 1
	case Sell:
		return -1
	case StrongSell:
		return -2
	default:
		return 0
	}
}

// CrossKind identifies the direction of a moving-average crossover.
type CrossKind string

const (
	GoldenCross CrossKind = "golden_cross"
	DeathCross  CrossKind = "death_cross"
)

// Cross is a point where a short moving average crossed a long one.
type Cross struct {
	Index int       `json:"index"`
	Kind  CrossKind `json:"kind"`
}

// IndicatorPoint pairs an indicator value with its bar date. Value is nil
// while the lookback window is not yet full.
type IndicatorPoint struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// SignalReport is the full technical picture for one symbol over one range.
type SignalReport struct {
	Symbol    string           `json:"symbol"`
	Range     string           `json:"range"`
	SMA20     []IndicatorPoint `json:"sma20"`
	SMA50     []IndicatorPoint `json:"sma50"`
	EMA12     []IndicatorPoint `json:"ema12"`
	EMA26     []IndicatorPoint `json:"ema26"`
	RSI       []IndicatorPoint `json:"rsi"`
	LastRSI   *float64         `json:"lastRsi"`
	LastCross *Cross           `json:"lastCross"`
	Signals   []NamedSignal    `json:"signals"`
	Overall   SignalStrength   `json:"overall"`
}

// NamedSignal is one indicator's contribution to the overall signal.
type NamedSignal struct {
	Name   string         `json:"name"`
	Signal SignalStrength `json:"signal"`
}
