package domain

import (
	"sort"
	"strings"
)

// StatEntry is a single yearly value of one statistic for a country.
type StatEntry struct {
	StatCode string  // Population
	Year     int     // 2019
	Value    float64 // 67.3
}

// Country holds the imported time series of one geographic unit.
type Country struct {
	Code       string // FRA
	Name       string // France
	RegionCode string // EU
	Statistics []StatEntry
}

// Store is the read-only set of countries a report is computed from.
type Store struct {
	Countries []Country
}

// Regions returns the sorted region codes present in the store.
// Countries without a region code are skipped.
func (s Store) Regions() []string {
	seen := make(map[string]struct{})
	for _, c := range s.Countries {
		code := strings.TrimSpace(c.RegionCode)
		if code == "" {
			continue
		}
		seen[code] = struct{}{}
	}

	regions := make([]string, 0, len(seen))
	for code := range seen {
		regions = append(regions, code)
	}
	sort.Strings(regions)
	return regions
}

// StatCodes returns the sorted statistic codes present in the store.
func (s Store) StatCodes() []string {
	seen := make(map[string]struct{})
	for _, c := range s.Countries {
		for _, st := range c.Statistics {
			seen[st.StatCode] = struct{}{}
		}
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// YearBounds returns the earliest and latest year loaded.
// ok is false when the store holds no statistics.
func (s Store) YearBounds() (bounds YearRange, ok bool) {
	for _, c := range s.Countries {
		for _, st := range c.Statistics {
			if !ok {
				bounds = YearRange{Start: st.Year, End: st.Year}
				ok = true
				continue
			}
			if st.Year < bounds.Start {
				bounds.Start = st.Year
			}
			if st.Year > bounds.End {
				bounds.End = st.Year
			}
		}
	}
	return bounds, ok
}
