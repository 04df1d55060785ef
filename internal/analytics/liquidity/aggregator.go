// Package liquidity turns per-instrument trading volume into the gold
// market's liquidity view: daily dollar volume split across demand sources,
// regional demand scaled from global totals, and statistically unusual
// volume days matched against a curated event catalog.
package liquidity

import (
	"sort"
	"time"

	"GoldPulse/internal/domain/models"
	"GoldPulse/internal/refdata"
	"GoldPulse/pkg/util"
)

// Aggregator combines instrument volume with the static demand tables. The
// tables are injected at construction so tests can substitute small fixtures.
type Aggregator struct {
	instruments []refdata.Instrument
	sources     []refdata.Source
	regions     []refdata.Region
	events      []models.MarketEvent

	spikeThreshold float64
	spikeLimit     int
	eventWindow    int
}

// Option adjusts the aggregator's spike-detection parameters.
type Option func(*Aggregator)

// WithSpikeThreshold overrides the minimum deviation, in standard-deviation
// units, for a day to count as a spike.
func WithSpikeThreshold(v float64) Option {
	return func(a *Aggregator) { a.spikeThreshold = v }
}

// WithSpikeLimit overrides how many spikes are reported at most.
func WithSpikeLimit(n int) Option {
	return func(a *Aggregator) { a.spikeLimit = n }
}

// WithEventWindow overrides the maximum day distance for event matching.
func WithEventWindow(days int) Option {
	return func(a *Aggregator) { a.eventWindow = days }
}

// NewAggregator builds an Aggregator over the given reference tables.
func NewAggregator(
	instruments []refdata.Instrument,
	sources []refdata.Source,
	regions []refdata.Region,
	events []models.MarketEvent,
	opts ...Option,
) *Aggregator {
	a := &Aggregator{
		instruments:    instruments,
		sources:        sources,
		regions:        regions,
		events:         events,
		spikeThreshold: 1.2,
		spikeLimit:     6,
		eventWindow:    3,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Aggregator) contractSize(symbol string) float64 {
	for _, inst := range a.instruments {
		if inst.Symbol == symbol {
			return inst.ContractSize
		}
	}
	return 1
}

// History aggregates per-symbol daily bars into a date-keyed dollar-volume
// series. Days missing from one instrument simply contribute nothing for it;
// the output covers the union of all dates, sorted ascending.
func (a *Aggregator) History(bars map[string][]models.Bar) []models.LiquidityDay {
	totals := make(map[string]float64)
	for symbol, series := range bars {
		size := a.contractSize(symbol)
		for _, bar := range series {
			if bar.Volume <= 0 || bar.Close <= 0 {
				continue
			}
			totals[util.DayKey(bar.Date)] += float64(bar.Volume) * size * bar.Close
		}
	}

	dates := make([]string, 0, len(totals))
	for d := range totals {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]models.LiquidityDay, 0, len(dates))
	for _, d := range dates {
		out = append(out, a.splitDay(d, totals[d]))
	}
	return out
}

// splitDay applies the fixed source percentages to one day's total.
func (a *Aggregator) splitDay(date string, total float64) models.LiquidityDay {
	day := models.LiquidityDay{Date: date, TotalVolume: total}
	for _, src := range a.sources {
		share := total * src.Percent / 100
		switch src.Key {
		case "institutional":
			day.Institutional = share
		case "centralBanks":
			day.CentralBanks = share
		case "privateRetail":
			day.PrivateRetail = share
		case "jewelry":
			day.Jewelry = share
		case "mining":
			day.Mining = share
		}
	}
	return day
}

// Summarize folds a day series into range totals. PerSource applies the
// source percentages to the grand total rather than summing the per-day
// splits; the two agree because the percentages are constant.
func (a *Aggregator) Summarize(days []models.LiquidityDay) models.LiquiditySummary {
	s := models.LiquiditySummary{
		TradingDays: len(days),
		PerSource:   make(map[string]float64, len(a.sources)),
	}
	for _, d := range days {
		s.TotalVolume += d.TotalVolume
	}
	if len(days) > 0 {
		s.AvgDailyVolume = s.TotalVolume / float64(len(days))
	}
	for _, src := range a.sources {
		s.PerSource[src.Key] = s.TotalVolume * src.Percent / 100
	}
	return s
}

// Regions scales the demand tree to a total volume. Country percentages are
// shares of the global total, so each country scales against totalVolume
// directly rather than against its region's slice.
func (a *Aggregator) Regions(totalVolume float64) []models.RegionDemand {
	out := make([]models.RegionDemand, 0, len(a.regions))
	for _, region := range a.regions {
		countries := make([]models.CountryDemand, 0, len(region.Countries))
		for _, c := range region.Countries {
			countries = append(countries, models.CountryDemand{
				Country:   c.Country,
				Flag:      c.Flag,
				Volume:    totalVolume * c.Percent / 100,
				Percent:   c.Percent,
				Breakdown: c.Breakdown,
			})
		}
		out = append(out, models.RegionDemand{
			Region:    region.Region,
			Percent:   region.Percent,
			Color:     region.Color,
			Countries: countries,
		})
	}
	return out
}

// Snapshot builds the live liquidity view from current quotes.
func (a *Aggregator) Snapshot(quotes map[string]*models.Quote, history []models.VolumeObservation) *models.LiquiditySnapshot {
	snap := &models.LiquiditySnapshot{
		History:   history,
		Timestamp: time.Now().UnixMilli(),
	}

	for _, inst := range a.instruments {
		q, ok := quotes[inst.Symbol]
		if !ok || q == nil {
			continue
		}
		dollar := float64(q.Volume) * inst.ContractSize * q.Price
		snap.TotalDollarVolume += dollar
		snap.Instruments = append(snap.Instruments, models.InstrumentVolume{
			Symbol:       inst.Symbol,
			Name:         inst.Name,
			Volume:       q.Volume,
			DollarVolume: dollar,
			Price:        q.Price,
		})
	}

	snap.Sources = make([]models.SourceVolume, 0, len(a.sources))
	for _, src := range a.sources {
		snap.Sources = append(snap.Sources, models.SourceVolume{
			Name:    src.Name,
			Value:   snap.TotalDollarVolume * src.Percent / 100,
			Percent: src.Percent,
			Color:   src.Color,
		})
	}

	snap.Regions = a.Regions(snap.TotalDollarVolume)
	return snap
}
