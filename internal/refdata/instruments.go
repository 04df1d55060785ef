// Package refdata holds the static reference tables consumed by the
// liquidity aggregator: the gold instrument basket, World Gold Council
// demand percentages, and the curated market-event catalog. The tables are
// versioned data, not computed; accessors hand out copies so callers can
// never mutate the canonical set.
package refdata

// Instrument is one member of the gold basket.
type Instrument struct {
	Symbol string
	Name   string
	// ContractSize converts contract volume to notional units. 1 for
	// instruments that trade at their quoted price (ETFs); 100 for the
	// COMEX future (100 oz per contract).
	ContractSize float64
}

var goldInstruments = []Instrument{
	{Symbol: "GC=F", Name: "COMEX Gold Futures", ContractSize: 100},
	{Symbol: "GLD", Name: "SPDR Gold Shares", ContractSize: 1},
	{Symbol: "IAU", Name: "iShares Gold Trust", ContractSize: 1},
	{Symbol: "SGOL", Name: "Aberdeen Gold ETF", ContractSize: 1},
	{Symbol: "GDX", Name: "VanEck Gold Miners", ContractSize: 1},
}

// GoldInstruments returns the gold basket.
func GoldInstruments() []Instrument {
	out := make([]Instrument, len(goldInstruments))
	copy(out, goldInstruments)
	return out
}

// GoldSymbols returns the basket's symbols in stored order.
func GoldSymbols() []string {
	out := make([]string, len(goldInstruments))
	for i, inst := range goldInstruments {
		out[i] = inst.Symbol
	}
	return out
}

// InstrumentName returns the display name for symbol, or symbol itself if
// it is not part of the basket.
func InstrumentName(symbol string) string {
	for _, inst := range goldInstruments {
		if inst.Symbol == symbol {
			return inst.Name
		}
	}
	return symbol
}
