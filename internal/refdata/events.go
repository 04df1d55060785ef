package refdata

import "GoldPulse/internal/domain/models"

// Curated catalog of major gold-market-moving events, used to explain
// volume spikes. Dates are the trading day when markets reacted, not
// necessarily the event date itself. Stored sorted ascending by date.
var marketEvents = []models.MarketEvent{
	{
		Date:        "2024-01-11",
		Title:       "SEC Approves Spot Bitcoin ETFs",
		Description: "The SEC approved 11 spot Bitcoin ETFs, triggering massive cross-asset rebalancing as institutional capital rotated between gold and crypto.",
	},
	{
		Date:        "2024-02-13",
		Title:       "January CPI Hotter Than Expected",
		Description: "U.S. January CPI came in at 3.1% vs. 2.9% expected, dashing hopes for early Fed rate cuts and sparking heavy gold futures repositioning.",
	},
	{
		Date:        "2024-03-08",
		Title:       "Gold Surges Past $2,100 on Jobs Data",
		Description: "February non-farm payrolls showed mixed signals with downward revisions, fueling rate-cut bets and driving gold above $2,100 on record volume.",
	},
	{
		Date:        "2024-03-20",
		Title:       "FOMC Holds, Signals Three 2024 Cuts",
		Description: "The Federal Reserve held rates but maintained its projection of three rate cuts in 2024, sending gold surging past $2,200 for the first time.",
	},
	{
		Date:        "2024-04-15",
		Title:       "Iran-Israel Military Escalation",
		Description: "Iran launched over 300 drones and missiles at Israel over the weekend. Markets opened Monday with a massive safe-haven rush into gold.",
	},
	{
		Date:        "2024-05-20",
		Title:       "Gold Hits Record $2,450",
		Description: "Gold broke through $2,450 for the first time, driven by persistent central bank buying and geopolitical uncertainty across multiple regions.",
	},
	{
		Date:        "2024-06-12",
		Title:       "CPI + FOMC Same-Day Double Event",
		Description: "May CPI came in cooler than expected the same day the FOMC held rates with hawkish guidance, creating whipsaw volume in gold markets.",
	},
	{
		Date:        "2024-07-11",
		Title:       "June CPI Turns Negative Monthly",
		Description: "June CPI showed the first monthly decline since 2020, dramatically boosting rate-cut expectations and driving heavy gold buying.",
	},
	{
		Date:        "2024-08-02",
		Title:       "Weak Jobs Report Sparks Recession Fears",
		Description: "July non-farm payrolls came in at just 114K vs. 175K expected, triggering the Sahm Rule recession indicator and a flight to gold.",
	},
	{
		Date:        "2024-08-05",
		Title:       "Global Market Crash — Yen Carry Trade Unwind",
		Description: "The Japanese yen carry trade violently unwound, VIX spiked to 65, and global equities crashed. Gold saw massive safe-haven inflows.",
	},
	{
		Date:        "2024-09-18",
		Title:       "Fed Cuts 50bp — First Cut Since 2020",
		Description: "The Federal Reserve cut rates by 50 basis points, the first cut since March 2020 and larger than the 25bp most expected, supercharging gold.",
	},
	{
		Date:        "2024-10-30",
		Title:       "Gold Nears $2,800 Pre-Election",
		Description: "Gold surged to nearly $2,800 as election uncertainty peaked, with polls showing a tight race and traders hedging all outcomes.",
	},
	{
		Date:        "2024-11-06",
		Title:       "U.S. Presidential Election — Trump Wins",
		Description: "Donald Trump won the presidential election decisively. Gold markets saw extreme volume as traders repriced tariff, fiscal, and dollar expectations.",
	},
	{
		Date:        "2024-12-18",
		Title:       "Fed Cuts 25bp But Signals Fewer 2025 Cuts",
		Description: "The Fed cut rates 25bp but the new dot plot projected only two cuts in 2025 (down from four), shocking markets and driving heavy gold repositioning.",
	},
	{
		Date:        "2025-01-20",
		Title:       "Trump Inauguration — Executive Orders Signed",
		Description: "President Trump was inaugurated and signed a wave of executive orders on trade and tariffs, triggering uncertainty-driven gold volume.",
	},
	{
		Date:        "2025-02-04",
		Title:       "New Tariffs Take Effect on China",
		Description: "A 10% tariff on Chinese imports took effect while Mexico and Canada tariffs were delayed after last-minute negotiations, roiling commodity markets.",
	},
	{
		Date:        "2025-03-04",
		Title:       "Tariffs on China Double to 20%",
		Description: "The U.S. doubled tariffs on China to 20% and imposed 25% tariffs on Canada and Mexico, escalating trade war fears and driving gold demand.",
	},
	{
		Date:        "2025-03-14",
		Title:       "Gold Breaks $3,000 for First Time",
		Description: "Gold crossed the historic $3,000/oz milestone for the first time, fueled by central bank accumulation, trade war fears, and dollar weakness.",
	},
	{
		Date:        "2025-04-02",
		Title:       "\"Liberation Day\" — Sweeping Tariffs Announced",
		Description: "President Trump announced sweeping reciprocal tariffs on nearly all trading partners, triggering the largest single-day gold volume spike in months.",
	},
	{
		Date:        "2025-04-09",
		Title:       "90-Day Tariff Pause — Massive Relief Rally",
		Description: "Trump paused most reciprocal tariffs for 90 days (except China, raised to 145%). Markets whipsawed with record volume as traders unwound hedges.",
	},
	{
		Date:        "2025-04-22",
		Title:       "Gold Hits $3,500 as Dollar Slides",
		Description: "Gold surged past $3,500/oz as the U.S. dollar weakened sharply on concerns over Fed independence and escalating trade tensions with China.",
	},
	{
		Date:        "2025-05-07",
		Title:       "FOMC Holds Amid Tariff Uncertainty",
		Description: "The Fed held rates steady, citing tariff-driven inflation uncertainty, while signaling a data-dependent approach that left gold markets volatile.",
	},
}

// MarketEvents returns the curated event catalog in stored (date) order.
func MarketEvents() []models.MarketEvent {
	out := make([]models.MarketEvent, len(marketEvents))
	copy(out, marketEvents)
	return out
}
