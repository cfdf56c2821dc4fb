package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/de-tools/market-atlas/pkg/services/report"
	"gopkg.in/ini.v1"
)

const weightKeyPrefix = "weight."

// PresetRegistry gives access to named report configurations kept in an INI file:
//
//	[emerging]
//	years = 2015-2020
//	regions = AS,AF
//	weighting = scaled
//	weight.Income = 50
//	weight.Population = 50
type PresetRegistry interface {
	GetPresets(ctx context.Context) ([]string, error)
	GetPreset(ctx context.Context, name string) (domain.Preset, error)
}

type presetRegistry struct {
	cfg *ini.File
}

func NewPresetRegistry(path string) (PresetRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}
	return &presetRegistry{cfg: cfg}, nil
}

func (pr *presetRegistry) GetPresets(_ context.Context) ([]string, error) {
	var presets []string
	for _, section := range pr.cfg.Sections() {
		if len(section.Keys()) > 0 && section.Name() != ini.DefaultSection {
			presets = append(presets, section.Name())
		}
	}
	return presets, nil
}

func (pr *presetRegistry) GetPreset(_ context.Context, name string) (domain.Preset, error) {
	section, err := pr.cfg.GetSection(name)
	if err != nil {
		return domain.Preset{}, fmt.Errorf("%w: preset %s not found", report.ErrConfiguration, name)
	}

	years, err := parseYears(section.Key("years").String())
	if err != nil {
		return domain.Preset{}, fmt.Errorf("preset %s: %w", name, err)
	}

	raw := make(map[string]string)
	for _, key := range section.Keys() {
		if stat, ok := strings.CutPrefix(key.Name(), weightKeyPrefix); ok {
			raw[stat] = key.String()
		}
	}
	weights, err := report.ParseWeights(raw)
	if err != nil {
		return domain.Preset{}, fmt.Errorf("preset %s: %w", name, err)
	}

	var regions []string
	for _, code := range section.Key("regions").Strings(",") {
		if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
			regions = append(regions, code)
		}
	}

	return domain.Preset{
		Name:      name,
		Weighting: section.Key("weighting").MustString(report.WeightingIdentity),
		Config: domain.ReportConfig{
			Weights:   weights,
			Years:     years,
			Regions:   regions,
			Averaging: domain.AveragingMode(section.Key("averaging").MustString(string(domain.AveragingSpan))),
		},
	}, nil
}

func parseYears(value string) (domain.YearRange, error) {
	start, end, found := strings.Cut(value, "-")
	if !found {
		end = start
	}

	startYear, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		return domain.YearRange{}, fmt.Errorf("%w: invalid years %q", report.ErrConfiguration, value)
	}
	endYear, err := strconv.Atoi(strings.TrimSpace(end))
	if err != nil {
		return domain.YearRange{}, fmt.Errorf("%w: invalid years %q", report.ErrConfiguration, value)
	}
	return domain.YearRange{Start: startYear, End: endYear}, nil
}
