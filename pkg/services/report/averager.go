package report

import (
	"fmt"
	"sort"

	"github.com/de-tools/market-atlas/pkg/models/domain"
)

// AverageCountries computes one average per (country, statistic) over the
// configured years for every country of the selected regions.
//
// Statistics without a value inside the range produce no average. The result
// is sorted by region, country, statistic and value, so countries sharing a
// code still sum in the same order whatever their position in the store.
func AverageCountries(store domain.Store, cfg domain.ReportConfig) ([]domain.CountryAverage, error) {
	if cfg.Years.End < cfg.Years.Start {
		return nil, fmt.Errorf("%w: end year %d is before start year %d",
			ErrConfiguration, cfg.Years.End, cfg.Years.Start)
	}

	divide, err := divisor(cfg)
	if err != nil {
		return nil, err
	}

	matched := 0
	averages := make([]domain.CountryAverage, 0)
	for _, country := range store.Countries {
		if !cfg.HasRegion(country.RegionCode) {
			continue
		}
		matched++

		sums := make(map[string]float64)
		counts := make(map[string]int)
		for _, st := range country.Statistics {
			if !cfg.Years.Contains(st.Year) {
				continue
			}
			sums[st.StatCode] += st.Value
			counts[st.StatCode]++
		}

		for stat, sum := range sums {
			averages = append(averages, domain.CountryAverage{
				CountryCode: country.Code,
				RegionCode:  country.RegionCode,
				StatCode:    stat,
				Value:       sum / divide(counts[stat]),
			})
		}
	}

	if matched == 0 {
		return nil, fmt.Errorf("%w: %v", ErrEmptyResult, cfg.Regions)
	}

	sort.SliceStable(averages, func(i, j int) bool {
		a, b := averages[i], averages[j]
		if a.RegionCode != b.RegionCode {
			return a.RegionCode < b.RegionCode
		}
		if a.CountryCode != b.CountryCode {
			return a.CountryCode < b.CountryCode
		}
		if a.StatCode != b.StatCode {
			return a.StatCode < b.StatCode
		}
		return a.Value < b.Value
	})
	return averages, nil
}

func divisor(cfg domain.ReportConfig) (func(observed int) float64, error) {
	switch cfg.Averaging {
	case "", domain.AveragingSpan:
		span := cfg.Years.Span()
		if span == 0 {
			span = 1
		}
		return func(int) float64 { return float64(span) }, nil
	case domain.AveragingObserved:
		return func(observed int) float64 { return float64(observed) }, nil
	default:
		return nil, fmt.Errorf("%w: unknown averaging mode %q", ErrConfiguration, cfg.Averaging)
	}
}
