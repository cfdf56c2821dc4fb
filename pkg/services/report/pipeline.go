package report

import (
	"context"
	"fmt"

	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Pipeline turns a store and a report configuration into weighted region totals.
type Pipeline struct {
	weigher Weigher
}

// NewPipeline creates a pipeline using weigher for the weighting stage.
// A nil weigher falls back to the identity weighting.
func NewPipeline(weigher Weigher) *Pipeline {
	if weigher == nil {
		weigher = NewIdentityWeigher()
	}
	return &Pipeline{weigher: weigher}
}

// Run validates cfg and runs averaging, aggregation and weighting in order.
// Any stage error is returned as is and no summary is produced.
func (p *Pipeline) Run(ctx context.Context, cfg domain.ReportConfig, store domain.Store) (domain.RegionSummary, error) {
	logger := zerolog.Ctx(ctx)

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	averages, err := AverageCountries(store, cfg)
	if err != nil {
		return nil, fmt.Errorf("average countries: %w", err)
	}
	logger.Debug().
		Int("averages", len(averages)).
		Stringer("years", cfg.Years).
		Msg("country averages computed")

	totals := Aggregate(averages)
	logger.Debug().Int("regions", len(totals)).Msg("region totals aggregated")

	weighted, err := p.weigher.Apply(totals, cfg.Weights)
	if err != nil {
		return nil, fmt.Errorf("apply weights: %w", err)
	}

	return weighted, nil
}
