package api

type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type ReportRequest struct {
	Weights   map[string]int `json:"weights"`
	Years     YearRange      `json:"years"`
	Regions   []string       `json:"regions"`
	Averaging string         `json:"averaging,omitempty"`
	Weighting string         `json:"weighting,omitempty"`
}

type RegionTotal struct {
	Region string             `json:"region"`
	Totals map[string]float64 `json:"totals"`
}

type ReportResponse struct {
	RunID   string        `json:"run_id"`
	Years   YearRange     `json:"years"`
	Regions []RegionTotal `json:"regions"`
}

type Catalog struct {
	Regions   []string   `json:"regions"`
	StatCodes []string   `json:"stat_codes"`
	Years     *YearRange `json:"years,omitempty"`
}

type Error struct {
	Error string `json:"error"`
}
