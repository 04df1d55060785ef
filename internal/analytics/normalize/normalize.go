// Package normalize rebases price series for cross-asset comparison.
package normalize

import (
	"sort"

	"GoldPulse/internal/domain/models"
	"GoldPulse/pkg/util"
)

// ToPercent rebases a close series to percent change from its first value.
// The first point is always 0; [100, 110, 90] becomes [0, 10, -10]. A
// series whose base is zero cannot be rebased and yields nil.
func ToPercent(bars []models.Bar) []models.NormalizedPoint {
	if len(bars) == 0 {
		return nil
	}
	base := bars[0].Close
	if base == 0 {
		return nil
	}
	out := make([]models.NormalizedPoint, len(bars))
	for i, bar := range bars {
		out[i] = models.NormalizedPoint{
			Date:  util.DayKey(bar.Date),
			Value: (bar.Close - base) / base * 100,
		}
	}
	return out
}

// Align merges several normalized series into date-keyed rows covering the
// union of all dates, sorted ascending. A symbol absent on a date is simply
// missing from that row's value map; no interpolation is applied.
func Align(series map[string][]models.NormalizedPoint) []models.ComparisonRow {
	byDate := make(map[string]map[string]float64)
	for symbol, points := range series {
		for _, p := range points {
			row, ok := byDate[p.Date]
			if !ok {
				row = make(map[string]float64)
				byDate[p.Date] = row
			}
			row[symbol] = p.Value
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]models.ComparisonRow, 0, len(dates))
	for _, d := range dates {
		out = append(out, models.ComparisonRow{Date: d, Values: byDate[d]})
	}
	return out
}
