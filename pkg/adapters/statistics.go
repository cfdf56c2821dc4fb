package adapters

import (
	"strings"

	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/de-tools/market-atlas/pkg/models/store"
)

// MapStoreStatisticsToDomain folds flat statistic rows into countries.
// Rows are grouped by country code in order of first appearance; the name and
// region of the first row of a country win.
func MapStoreStatisticsToDomain(records []store.StatisticRecord) domain.Store {
	index := make(map[string]int)
	countries := make([]domain.Country, 0)

	for _, record := range records {
		code := strings.TrimSpace(record.CountryCode)
		i, ok := index[code]
		if !ok {
			i = len(countries)
			index[code] = i
			countries = append(countries, domain.Country{
				Code:       code,
				Name:       strings.TrimSpace(record.CountryName),
				RegionCode: strings.ToUpper(strings.TrimSpace(record.RegionCode)),
			})
		}

		countries[i].Statistics = append(countries[i].Statistics, domain.StatEntry{
			StatCode: strings.TrimSpace(record.StatCode),
			Year:     record.Year,
			Value:    record.Value,
		})
	}

	return domain.Store{Countries: countries}
}
