package adapters

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/de-tools/market-atlas/pkg/models/api"
	"github.com/de-tools/market-atlas/pkg/models/domain"
)

func MapReportRequestApiToDomain(req api.ReportRequest) domain.ReportConfig {
	regions := make([]string, 0, len(req.Regions))
	for _, r := range req.Regions {
		regions = append(regions, strings.ToUpper(strings.TrimSpace(r)))
	}

	weights := make(domain.Weights, len(req.Weights))
	for stat, pct := range req.Weights {
		weights[stat] = pct
	}

	return domain.ReportConfig{
		Weights:   weights,
		Years:     domain.YearRange{Start: req.Years.Start, End: req.Years.End},
		Regions:   regions,
		Averaging: domain.AveragingMode(req.Averaging),
	}
}

func MapRegionSummaryDomainToApi(runID string, years domain.YearRange, summary domain.RegionSummary) api.ReportResponse {
	response := api.ReportResponse{
		RunID:   runID,
		Years:   api.YearRange{Start: years.Start, End: years.End},
		Regions: []api.RegionTotal{},
	}

	for _, region := range summary.Regions() {
		totals := make(map[string]float64, len(summary[region]))
		for stat, value := range summary[region] {
			totals[stat] = value
		}
		response.Regions = append(response.Regions, api.RegionTotal{Region: region, Totals: totals})
	}
	return response
}

func MapStoreDomainToCatalogApi(store domain.Store) api.Catalog {
	catalog := api.Catalog{
		Regions:   store.Regions(),
		StatCodes: store.StatCodes(),
	}
	if bounds, ok := store.YearBounds(); ok {
		catalog.Years = &api.YearRange{Start: bounds.Start, End: bounds.End}
	}
	return catalog
}

// MapRegionSummaryToReport builds the display model of a finished run.
func MapRegionSummaryToReport(
	cfg domain.ReportConfig,
	weighting string,
	summary domain.RegionSummary,
	generatedAt time.Time,
) *domain.Report {
	report := &domain.Report{
		Title:       "Regional Market Report",
		GeneratedAt: generatedAt,
		Years:       cfg.Years,
		Weights:     cfg.Weights,
		Weighting:   weighting,
		Sections:    make([]domain.ReportSection, 0, len(summary)),
	}

	for _, region := range summary.Regions() {
		stats := make([]string, 0, len(summary[region]))
		for stat := range summary[region] {
			stats = append(stats, stat)
		}
		sort.Strings(stats)

		section := domain.ReportSection{Title: region}
		for _, stat := range stats {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:        stat,
				Value:       summary[region][stat],
				Weight:      cfg.Weights[stat],
				Description: fmt.Sprintf("total of country averages %s", cfg.Years),
			})
		}
		report.Sections = append(report.Sections, section)
	}
	return report
}
