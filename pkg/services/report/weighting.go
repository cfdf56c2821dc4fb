package report

import "github.com/de-tools/market-atlas/pkg/models/domain"

// Weigher applies report weights to aggregated region totals.
type Weigher interface {
	Apply(summary domain.RegionSummary, weights domain.Weights) (domain.RegionSummary, error)
}

type identityWeigher struct{}

// NewIdentityWeigher returns a Weigher that leaves the totals untouched.
func NewIdentityWeigher() Weigher {
	return identityWeigher{}
}

func (identityWeigher) Apply(summary domain.RegionSummary, _ domain.Weights) (domain.RegionSummary, error) {
	return summary.Clone(), nil
}

type scaledWeigher struct{}

// NewScaledWeigher returns a Weigher multiplying every statistic total by its
// percentage. Statistics without a weight end up at zero.
func NewScaledWeigher() Weigher {
	return scaledWeigher{}
}

func (scaledWeigher) Apply(summary domain.RegionSummary, weights domain.Weights) (domain.RegionSummary, error) {
	out := make(domain.RegionSummary, len(summary))
	for region, stats := range summary {
		scaled := make(map[string]float64, len(stats))
		for stat, value := range stats {
			scaled[stat] = value * float64(weights[stat]) / 100
		}
		out[region] = scaled
	}
	return out, nil
}
