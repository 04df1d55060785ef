package models

// Quote is a point-in-time snapshot for a single instrument.
type Quote struct {
	Symbol        string  `json:"symbol"`
	ShortName     string  `json:"shortName"`
	Price         float64 `json:"price"`
	PreviousClose float64 `json:"previousClose"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	DayHigh       float64 `json:"dayHigh"`
	DayLow        float64 `json:"dayLow"`
	Volume        int64   `json:"volume"`
	MarketState   string  `json:"marketState"`
	Timestamp     int64   `json:"timestamp"` // unix millis
}
