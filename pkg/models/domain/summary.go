package domain

import "sort"

// CountryAverage is the average of one statistic of one country over the report years.
type CountryAverage struct {
	CountryCode string
	RegionCode  string
	StatCode    string
	Value       float64
}

// RegionSummary maps region code -> statistic code -> total of the country averages.
type RegionSummary map[string]map[string]float64

// Clone returns a deep copy of the summary.
func (s RegionSummary) Clone() RegionSummary {
	out := make(RegionSummary, len(s))
	for region, stats := range s {
		inner := make(map[string]float64, len(stats))
		for stat, value := range stats {
			inner[stat] = value
		}
		out[region] = inner
	}
	return out
}

// Regions returns the region codes of the summary, sorted.
func (s RegionSummary) Regions() []string {
	regions := make([]string, 0, len(s))
	for region := range s {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}
