package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/de-tools/market-atlas/pkg/models/domain"
)

// ParseWeights converts raw percentage inputs keyed by statistic code.
func ParseWeights(raw map[string]string) (domain.Weights, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no weights given", ErrInvalidWeights)
	}

	weights := make(domain.Weights, len(raw))
	for stat, value := range raw {
		pct, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: numbers only, got %q", ErrInvalidWeights, stat, value)
		}
		if pct < 0 || pct > 100 {
			return nil, fmt.Errorf("%w: %s: %d is outside 0-100", ErrInvalidWeights, stat, pct)
		}
		weights[stat] = pct
	}

	if total := weights.Total(); total != 100 {
		return nil, fmt.Errorf("%w: amounts sum to %d, expected 100", ErrInvalidWeights, total)
	}
	return weights, nil
}

// ParseYearRange converts raw start and end years and checks them against the loaded bounds.
func ParseYearRange(start, end string, bounds domain.YearRange) (domain.YearRange, error) {
	startYear, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		return domain.YearRange{}, fmt.Errorf("%w: start year %q is not a number", ErrConfiguration, start)
	}
	endYear, err := strconv.Atoi(strings.TrimSpace(end))
	if err != nil {
		return domain.YearRange{}, fmt.Errorf("%w: end year %q is not a number", ErrConfiguration, end)
	}

	years := domain.YearRange{Start: startYear, End: endYear}
	if !bounds.Contains(years.Start) || !bounds.Contains(years.End) {
		return domain.YearRange{}, fmt.Errorf("%w: years must be between %d and %d",
			ErrConfiguration, bounds.Start, bounds.End)
	}
	if years.End < years.Start {
		return domain.YearRange{}, fmt.Errorf("%w: end year %d is before start year %d",
			ErrConfiguration, years.End, years.Start)
	}
	return years, nil
}

// ParseRegions splits a comma separated list of region codes. Codes are
// upper-cased and every one of them must be part of known.
func ParseRegions(input string, known []string) ([]string, error) {
	knownSet := make(map[string]struct{}, len(known))
	for _, code := range known {
		knownSet[code] = struct{}{}
	}

	selected := make(map[string]struct{})
	var unknown []string
	for _, part := range strings.Split(input, ",") {
		code := strings.ToUpper(strings.TrimSpace(part))
		if code == "" {
			continue
		}
		if _, ok := knownSet[code]; !ok {
			unknown = append(unknown, code)
			continue
		}
		selected[code] = struct{}{}
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: unknown regions %s, valid region codes are %s",
			ErrConfiguration, strings.Join(unknown, ","), strings.Join(known, ","))
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: no region selected", ErrConfiguration)
	}

	regions := make([]string, 0, len(selected))
	for code := range selected {
		regions = append(regions, code)
	}
	sort.Strings(regions)
	return regions, nil
}
