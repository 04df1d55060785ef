package models

// SourceVolume is one fixed-percentage slice of total dollar volume.
type SourceVolume struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

// InstrumentVolume is one instrument's contribution to the live snapshot.
type InstrumentVolume struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Volume       int64   `json:"volume"`
	DollarVolume float64 `json:"dollarVolume"`
	Price        float64 `json:"price"`
}

// DemandSlice is one demand-type share of a country's gold demand.
type DemandSlice struct {
	Type    string  `json:"type"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

// CountryDemand scales a country's share of global demand to a volume figure.
type CountryDemand struct {
	Country   string        `json:"country"`
	Flag      string        `json:"flag"`
	Volume    float64       `json:"volume"`
	Percent   float64       `json:"percent"`
	Breakdown []DemandSlice `json:"breakdown"`
}

// RegionDemand groups countries under a region share.
type RegionDemand struct {
	Region    string          `json:"region"`
	Percent   float64         `json:"percent"`
	Color     string          `json:"color"`
	Countries []CountryDemand `json:"countries"`
}

// LiquiditySnapshot is the live (quote-derived) liquidity view.
type LiquiditySnapshot struct {
	TotalDollarVolume float64             `json:"totalDollarVolume"`
	Sources           []SourceVolume      `json:"sources"`
	Instruments       []InstrumentVolume  `json:"instruments"`
	Regions           []RegionDemand      `json:"regions"`
	History           []VolumeObservation `json:"history"`
	Timestamp         int64               `json:"timestamp"`
}

// VolumeObservation is a raw (date, volume) pair.
type VolumeObservation struct {
	Date   string `json:"date"`
	Volume int64  `json:"volume"`
}

// LiquidityDay is one day of aggregated dollar volume split across the
// five demand sources.
type LiquidityDay struct {
	Date          string  `json:"date"`
	TotalVolume   float64 `json:"totalVolume"`
	Institutional float64 `json:"institutional"`
	CentralBanks  float64 `json:"centralBanks"`
	PrivateRetail float64 `json:"privateRetail"`
	Jewelry       float64 `json:"jewelry"`
	Mining        float64 `json:"mining"`
}

// LiquiditySummary aggregates a whole range of liquidity days.
type LiquiditySummary struct {
	TotalVolume    float64            `json:"totalVolume"`
	AvgDailyVolume float64            `json:"avgDailyVolume"`
	TradingDays    int                `json:"tradingDays"`
	PerSource      map[string]float64 `json:"perSource"`
}

// MarketEvent is a curated catalog entry explaining unusual volume.
type MarketEvent struct {
	Date        string `json:"date"` // YYYY-MM-DD, the trading day markets reacted
	Title       string `json:"title"`
	Description string `json:"description"`
}

// VolumeSpike is a statistically anomalous volume day, optionally matched
// to a catalog event. Unmatched spikes carry a generic title and description.
type VolumeSpike struct {
	Date        string       `json:"date"`
	TotalVolume float64      `json:"totalVolume"`
	Deviation   float64      `json:"deviation"` // standard-deviation units
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Event       *MarketEvent `json:"event,omitempty"`
}

// LiquidityHistory is the full historical liquidity response.
type LiquidityHistory struct {
	History   []LiquidityDay   `json:"history"`
	Summary   LiquiditySummary `json:"summary"`
	Regions   []RegionDemand   `json:"regions"`
	Spikes    []VolumeSpike    `json:"spikes"`
	Range     string           `json:"range"`
	Timestamp int64            `json:"timestamp"`
}
