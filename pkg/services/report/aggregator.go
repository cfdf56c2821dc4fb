package report

import "github.com/de-tools/market-atlas/pkg/models/domain"

// Aggregate sums country averages per region and statistic.
// The values are region totals, not means across countries.
func Aggregate(averages []domain.CountryAverage) domain.RegionSummary {
	totals := make(domain.RegionSummary)
	for _, avg := range averages {
		stats, ok := totals[avg.RegionCode]
		if !ok {
			stats = make(map[string]float64)
			totals[avg.RegionCode] = stats
		}

		if _, seen := stats[avg.StatCode]; !seen {
			stats[avg.StatCode] = avg.Value
			continue
		}
		stats[avg.StatCode] += avg.Value
	}
	return totals
}
