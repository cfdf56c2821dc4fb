package store

// StatisticRecord is one flat row of an imported statistics source.
type StatisticRecord struct {
	CountryCode string  `db:"country_code"`
	CountryName string  `db:"country_name"`
	RegionCode  string  `db:"region_code"`
	StatCode    string  `db:"stat_code"`
	Year        int     `db:"year"`
	Value       float64 `db:"value"`
}
