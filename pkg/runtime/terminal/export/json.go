package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/de-tools/market-atlas/pkg/models/api"
	"github.com/de-tools/market-atlas/pkg/models/domain"
)

// JSONReporter writes the report in the same shape the web API returns
type JSONReporter struct {
	writer io.Writer
}

func NewJSONReporter(writer io.Writer) *JSONReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONReporter{writer: writer}
}

func (c *JSONReporter) Handle(report *domain.Report) error {
	response := api.ReportResponse{
		RunID:   report.RunID,
		Years:   api.YearRange{Start: report.Years.Start, End: report.Years.End},
		Regions: make([]api.RegionTotal, 0, len(report.Sections)),
	}
	for _, section := range report.Sections {
		totals := make(map[string]float64, len(section.Details))
		for _, d := range section.Details {
			totals[d.Name] = d.Value
		}
		response.Regions = append(response.Regions, api.RegionTotal{Region: section.Title, Totals: totals})
	}

	enc := json.NewEncoder(c.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(response)
}
