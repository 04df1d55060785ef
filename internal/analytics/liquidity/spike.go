package liquidity

import (
	"math"
	"sort"

	"GoldPulse/internal/domain/models"
	"GoldPulse/pkg/util"
)

// Spikes finds the days whose total volume deviates most from the range
// mean. Fewer than ten observations give no statistical footing, so the
// result is empty rather than noisy.
func (a *Aggregator) Spikes(days []models.LiquidityDay) []models.VolumeSpike {
	spikes := []models.VolumeSpike{}
	if len(days) < 10 {
		return spikes
	}

	var mean float64
	for _, d := range days {
		mean += d.TotalVolume
	}
	mean /= float64(len(days))

	var variance float64
	for _, d := range days {
		diff := d.TotalVolume - mean
		variance += diff * diff
	}
	variance /= float64(len(days))
	stddev := math.Sqrt(variance)
	if stddev == 0 {
		return spikes
	}

	for _, d := range days {
		dev := (d.TotalVolume - mean) / stddev
		if dev <= a.spikeThreshold {
			continue
		}
		sp := models.VolumeSpike{
			Date:        d.Date,
			TotalVolume: d.TotalVolume,
			Deviation:   dev,
		}
		if ev := a.matchEvent(d.Date); ev != nil {
			sp.Title = ev.Title
			sp.Description = ev.Description
			sp.Event = ev
		} else {
			sp.Title = "Unusual volume spike"
			sp.Description = "Trading volume well above the period average with no known market event nearby."
		}
		spikes = append(spikes, sp)
	}

	sort.Slice(spikes, func(i, j int) bool {
		return spikes[i].Deviation > spikes[j].Deviation
	})
	if len(spikes) > a.spikeLimit {
		spikes = spikes[:a.spikeLimit]
	}
	return spikes
}

// matchEvent finds the catalog event closest to date within the matching
// window. The catalog is stored date-ascending, so on a distance tie the
// earlier event wins.
func (a *Aggregator) matchEvent(date string) *models.MarketEvent {
	day, err := util.ParseDay(date)
	if err != nil {
		return nil
	}

	var best *models.MarketEvent
	bestDist := a.eventWindow + 1
	for i := range a.events {
		eventDay, err := util.ParseDay(a.events[i].Date)
		if err != nil {
			continue
		}
		dist := util.DaysBetween(day, eventDay)
		if dist < bestDist {
			bestDist = dist
			best = &a.events[i]
		}
	}
	if best == nil {
		return nil
	}
	ev := *best
	return &ev
}
