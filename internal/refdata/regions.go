package refdata

import "GoldPulse/internal/domain/models"

// Country is one country's share of total global gold demand. Percent is a
// share of the global total, not of the parent region, so it multiplies the
// total volume directly.
type Country struct {
	Country   string
	Flag      string
	Percent   float64
	Breakdown []models.DemandSlice
}

// Region groups countries under a regional share of global demand.
type Region struct {
	Region    string
	Percent   float64
	Color     string
	Countries []Country
}

// Country-level demand data based on World Gold Council Gold Demand Trends.
var regionData = []Region{
	{
		Region:  "Asia Pacific",
		Percent: 52,
		Color:   "#ef4444",
		Countries: []Country{
			{Country: "China", Flag: "\U0001F1E8\U0001F1F3", Percent: 24, Breakdown: []models.DemandSlice{
				{Type: "Jewelry", Percent: 55, Color: colorJewelry},
				{Type: "Central Bank", Percent: 20, Color: colorCentralBank},
				{Type: "Bars & Coins", Percent: 18, Color: colorBarsCoins},
				{Type: "Technology", Percent: 7, Color: colorTechnology},
			}},
			{Country: "India", Flag: "\U0001F1EE\U0001F1F3", Percent: 18, Breakdown: []models.DemandSlice{
				{Type: "Jewelry", Percent: 65, Color: colorJewelry},
				{Type: "Bars & Coins", Percent: 20, Color: colorBarsCoins},
				{Type: "Central Bank", Percent: 10, Color: colorCentralBank},
				{Type: "Technology", Percent: 5, Color: colorTechnology},
			}},
			{Country: "Thailand", Flag: "\U0001F1F9\U0001F1ED", Percent: 3, Breakdown: []models.DemandSlice{
				{Type: "Jewelry", Percent: 60, Color: colorJewelry},
				{Type: "Bars & Coins", Percent: 40, Color: colorBarsCoins},
			}},
			{Country: "Japan", Flag: "\U0001F1EF\U0001F1F5", Percent: 2.5, Breakdown: []models.DemandSlice{
				{Type: "Investment", Percent: 50, Color: colorInvestment},
				{Type: "Technology", Percent: 35, Color: colorTechnology},
				{Type: "Jewelry", Percent: 15, Color: colorJewelry},
			}},
			{Country: "South Korea", Flag: "\U0001F1F0\U0001F1F7", Percent: 1.5, Breakdown: []models.DemandSlice{
				{Type: "Technology", Percent: 45, Color: colorTechnology},
				{Type: "Investment", Percent: 35, Color: colorInvestment},
				{Type: "Jewelry", Percent: 20, Color: colorJewelry},
			}},
			{Country: "Indonesia", Flag: "\U0001F1EE\U0001F1E9", Percent: 1.5, Breakdown: []models.DemandSlice{
				{Type: "Jewelry", Percent: 70, Color: colorJewelry},
				{Type: "Bars & Coins", Percent: 30, Color: colorBarsCoins},
			}},
			{Country: "Vietnam", Flag: "\U0001F1FB\U0001F1F3", Percent: 1.5, Breakdown: []models.DemandSlice{
				{Type: "Jewelry", Percent: 55, Color: colorJewelry},
				{Type: "Bars & Coins", Percent: 45, Color: colorBarsCoins},
			}},
		},
	},
	{
		Region:  "Europe",
		Percent: 22,
		Color:   "#3b82f6",
		Countries: []Country{
			{Country: "Turkey", Flag: "\U0001F1F9\U0001F1F7", Percent: 5, Breakdown: []models.DemandSlice{
				{Type: "Jewelry", Percent: 40, Color: colorJewelry},
				{Type: "Central Bank", Percent: 35, Color: colorCentralBank},
				{Type: "Bars & Coins", Percent: 25, Color: colorBarsCoins},
			}},
			{Country: "Germany", Flag: "\U0001F1E9\U0001F1EA", Percent: 4, Breakdown: []models.DemandSlice{
				{Type: "Bars & Coins", Percent: 60, Color: colorBarsCoins},
				{Type: "Investment", Percent: 30, Color: colorInvestment},
				{Type: "Technology", Percent: 10, Color: colorTechnology},
			}},
			{Country: "United Kingdom", Flag: "\U0001F1EC\U0001F1E7", Percent: 4, Breakdown: []models.DemandSlice{
				{Type: "Trading", Percent: 55, Color: colorTrading},
				{Type: "Investment", Percent: 35, Color: colorInvestment},
				{Type: "Jewelry", Percent: 10, Color: colorJewelry},
			}},
			{Country: "Switzerland", Flag: "\U0001F1E8\U0001F1ED", Percent: 3.5, Breakdown: []models.DemandSlice{
				{Type: "Refining", Percent: 50, Color: colorRefining},
				{Type: "Investment", Percent: 35, Color: colorInvestment},
				{Type: "Jewelry", Percent: 15, Color: colorJewelry},
			}},
			{Country: "Poland", Flag: "\U0001F1F5\U0001F1F1", Percent: 2.5, Breakdown: []models.DemandSlice{
				{Type: "Central Bank", Percent: 75, Color: colorCentralBank},
				{Type: "Bars & Coins", Percent: 25, Color: colorBarsCoins},
			}},
			{Country: "France", Flag: "\U0001F1EB\U0001F1F7", Percent: 1.5, Breakdown: []models.DemandSlice{
				{Type: "Investment", Percent: 50, Color: colorInvestment},
				{Type: "Jewelry", Percent: 30, Color: colorJewelry},
				{Type: "Technology", Percent: 20, Color: colorTechnology},
			}},
			{Country: "Czech Republic", Flag: "\U0001F1E8\U0001F1FF", Percent: 1.5, Breakdown: []models.DemandSlice{
				{Type: "Central Bank", Percent: 85, Color: colorCentralBank},
				{Type: "Investment", Percent: 15, Color: colorInvestment},
			}},
		},
	},
	{
		Region:  "Americas",
		Percent: 16,
		Color:   "#10b981",
		Countries: []Country{
			{Country: "United States", Flag: "\U0001F1FA\U0001F1F8", Percent: 10, Breakdown: []models.DemandSlice{
				{Type: "Investment", Percent: 55, Color: colorInvestment},
				{Type: "Technology", Percent: 20, Color: colorTechnology},
				{Type: "Jewelry", Percent: 15, Color: colorJewelry},
				{Type: "Central Bank", Percent: 10, Color: colorCentralBank},
			}},
			{Country: "Canada", Flag: "\U0001F1E8\U0001F1E6", Percent: 2.5, Breakdown: []models.DemandSlice{
				{Type: "Mining", Percent: 50, Color: colorMining},
				{Type: "Investment", Percent: 40, Color: colorInvestment},
				{Type: "Jewelry", Percent: 10, Color: colorJewelry},
			}},
			{Country: "Brazil", Flag: "\U0001F1E7\U0001F1F7", Percent: 1.5, Breakdown: []models.DemandSlice{
				{Type: "Jewelry", Percent: 45, Color: colorJewelry},
				{Type: "Investment", Percent: 35, Color: colorInvestment},
				{Type: "Central Bank", Percent: 20, Color: colorCentralBank},
			}},
			{Country: "Mexico", Flag: "\U0001F1F2\U0001F1FD", Percent: 1, Breakdown: []models.DemandSlice{
				{Type: "Jewelry", Percent: 50, Color: colorJewelry},
				{Type: "Bars & Coins", Percent: 35, Color: colorBarsCoins},
				{Type: "Mining", Percent: 15, Color: colorMining},
			}},
			{Country: "Peru", Flag: "\U0001F1F5\U0001F1EA", Percent: 1, Breakdown: []models.DemandSlice{
				{Type: "Mining", Percent: 80, Color: colorMining},
				{Type: "Jewelry", Percent: 20, Color: colorJewelry},
			}},
		},
	},
	{
		Region:  "Middle East & Africa",
		Percent: 10,
		Color:   "#f59e0b",
		Countries: []Country{
			{Country: "Saudi Arabia", Flag: "\U0001F1F8\U0001F1E6", Percent: 2.5, Breakdown: []models.DemandSlice{
				{Type: "Jewelry", Percent: 75, Color: colorJewelry},
				{Type: "Investment", Percent: 25, Color: colorInvestment},
			}},
			{Country: "UAE", Flag: "\U0001F1E6\U0001F1EA", Percent: 2, Breakdown: []models.DemandSlice{
				{Type: "Jewelry", Percent: 50, Color: colorJewelry},
				{Type: "Trading", Percent: 35, Color: colorTrading},
				{Type: "Investment", Percent: 15, Color: colorInvestment},
			}},
			{Country: "Egypt", Flag: "\U0001F1EA\U0001F1EC", Percent: 1.5, Breakdown: []models.DemandSlice{
				{Type: "Jewelry", Percent: 60, Color: colorJewelry},
				{Type: "Bars & Coins", Percent: 30, Color: colorBarsCoins},
				{Type: "Central Bank", Percent: 10, Color: colorCentralBank},
			}},
			{Country: "South Africa", Flag: "\U0001F1FF\U0001F1E6", Percent: 1.5, Breakdown: []models.DemandSlice{
				{Type: "Mining", Percent: 70, Color: colorMining},
				{Type: "Jewelry", Percent: 20, Color: colorJewelry},
				{Type: "Investment", Percent: 10, Color: colorInvestment},
			}},
			{Country: "Ghana", Flag: "\U0001F1EC\U0001F1ED", Percent: 1, Breakdown: []models.DemandSlice{
				{Type: "Mining", Percent: 85, Color: colorMining},
				{Type: "Jewelry", Percent: 15, Color: colorJewelry},
			}},
			{Country: "Iran", Flag: "\U0001F1EE\U0001F1F7", Percent: 1.5, Breakdown: []models.DemandSlice{
				{Type: "Jewelry", Percent: 55, Color: colorJewelry},
				{Type: "Bars & Coins", Percent: 35, Color: colorBarsCoins},
				{Type: "Central Bank", Percent: 10, Color: colorCentralBank},
			}},
		},
	},
}

// RegionData returns the region/country demand tree.
func RegionData() []Region {
	out := make([]Region, len(regionData))
	copy(out, regionData)
	return out
}
