package refdata

// Source is one fixed-percentage partition of total dollar volume. The
// percentages follow World Gold Council demand data; they are an allocation
// table, not a measurement.
type Source struct {
	Key     string // stable identifier used in per-source maps
	Name    string
	Percent float64
	Color   string
}

var sourceBreakdown = []Source{
	{Key: "institutional", Name: "Institutional Investors", Percent: 35, Color: "#3b82f6"},
	{Key: "centralBanks", Name: "Central Banks", Percent: 22, Color: "#eab308"},
	{Key: "privateRetail", Name: "Private / Retail", Percent: 18, Color: "#10b981"},
	{Key: "jewelry", Name: "Jewelry & Industrial", Percent: 15, Color: "#f59e0b"},
	{Key: "mining", Name: "Mining & Supply", Percent: 10, Color: "#8b5cf6"},
}

// SourceBreakdown returns the five demand-source percentages.
func SourceBreakdown() []Source {
	out := make([]Source, len(sourceBreakdown))
	copy(out, sourceBreakdown)
	return out
}

// Demand type colors used in country breakdowns.
const (
	colorCentralBank = "#eab308"
	colorInvestment  = "#3b82f6"
	colorJewelry     = "#f59e0b"
	colorTechnology  = "#8b5cf6"
	colorBarsCoins   = "#10b981"
	colorMining      = "#a855f7"
	colorRefining    = "#06b6d4"
	colorTrading     = "#6366f1"
)
