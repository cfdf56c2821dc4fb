package report

import "github.com/de-tools/market-atlas/pkg/models/domain"

func entry(stat string, year int, value float64) domain.StatEntry {
	return domain.StatEntry{StatCode: stat, Year: year, Value: value}
}

func testConfig(start, end int, regions ...string) domain.ReportConfig {
	return domain.ReportConfig{
		Weights: domain.Weights{"Income": 40, "Population": 30, "Urban": 30},
		Years:   domain.YearRange{Start: start, End: end},
		Regions: regions,
	}
}

func testStore() domain.Store {
	return domain.Store{Countries: []domain.Country{
		{
			Code: "FRA", Name: "France", RegionCode: "EU",
			Statistics: []domain.StatEntry{
				entry("Population", 2019, 100),
				entry("Population", 2020, 200),
				entry("Income", 2019, 10),
				entry("Income", 2020, 30),
			},
		},
		{
			Code: "DEU", Name: "Germany", RegionCode: "EU",
			Statistics: []domain.StatEntry{
				entry("Population", 2019, 50),
				entry("Population", 2020, 50),
				entry("Urban", 2020, 7),
			},
		},
		{
			Code: "JPN", Name: "Japan", RegionCode: "AS",
			Statistics: []domain.StatEntry{
				entry("Population", 2018, 500),
				entry("Population", 2019, 120),
				entry("Population", 2020, 130),
			},
		},
		{
			Code: "XXX", Name: "Unassigned",
			Statistics: []domain.StatEntry{
				entry("Population", 2019, 999),
			},
		},
	}}
}
