package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/de-tools/market-atlas/pkg/services/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presetsFile = `
[emerging]
years = 2015-2020
regions = as, AF
weighting = scaled
averaging = observed
weight.Income = 50
weight.Population = 30
weight.Urban = 20

[single-year]
years = 2019
regions = EU
weight.Population = 100

[broken]
years = 2019
regions = EU
weight.Population = 60
`

func newTestRegistry(t *testing.T) PresetRegistry {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.ini")
	require.NoError(t, os.WriteFile(path, []byte(presetsFile), 0o644))

	registry, err := NewPresetRegistry(path)
	require.NoError(t, err)
	return registry
}

func TestPresetRegistry_GetPresets(t *testing.T) {
	registry := newTestRegistry(t)

	presets, err := registry.GetPresets(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"emerging", "single-year", "broken"}, presets)
}

func TestPresetRegistry_GetPreset(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry(t)

	t.Run("full preset", func(t *testing.T) {
		preset, err := registry.GetPreset(ctx, "emerging")

		require.NoError(t, err)
		assert.Equal(t, domain.Preset{
			Name:      "emerging",
			Weighting: "scaled",
			Config: domain.ReportConfig{
				Weights:   domain.Weights{"Income": 50, "Population": 30, "Urban": 20},
				Years:     domain.YearRange{Start: 2015, End: 2020},
				Regions:   []string{"AS", "AF"},
				Averaging: domain.AveragingObserved,
			},
		}, preset)
	})

	t.Run("defaults", func(t *testing.T) {
		preset, err := registry.GetPreset(ctx, "single-year")

		require.NoError(t, err)
		assert.Equal(t, report.WeightingIdentity, preset.Weighting)
		assert.Equal(t, domain.AveragingSpan, preset.Config.Averaging)
		assert.Equal(t, domain.YearRange{Start: 2019, End: 2019}, preset.Config.Years)
	})

	t.Run("weights not summing to 100", func(t *testing.T) {
		_, err := registry.GetPreset(ctx, "broken")
		assert.ErrorIs(t, err, report.ErrInvalidWeights)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := registry.GetPreset(ctx, "missing")
		assert.ErrorIs(t, err, report.ErrConfiguration)
		assert.ErrorContains(t, err, "preset missing not found")
	})
}

func TestNewPresetRegistry_MissingFile(t *testing.T) {
	_, err := NewPresetRegistry(filepath.Join(t.TempDir(), "none.ini"))
	assert.Error(t, err)
}
