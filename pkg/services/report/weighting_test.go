package report

import (
	"testing"

	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityWeigher(t *testing.T) {
	summary := domain.RegionSummary{"EU": {"Population": 400, "Income": 40}}

	weighted, err := NewIdentityWeigher().Apply(summary, domain.Weights{"Population": 50, "Income": 50})

	require.NoError(t, err)
	assert.Equal(t, summary, weighted)

	weighted["EU"]["Population"] = 0
	assert.Equal(t, 400.0, summary["EU"]["Population"], "input must not be shared with the output")
}

func TestScaledWeigher(t *testing.T) {
	summary := domain.RegionSummary{
		"EU": {"Population": 400, "Income": 40, "Urban": 8},
		"AS": {"Population": 250},
	}

	weighted, err := NewScaledWeigher().Apply(summary, domain.Weights{"Population": 50, "Income": 50})

	require.NoError(t, err)
	assert.Equal(t, domain.RegionSummary{
		"EU": {"Population": 200, "Income": 20, "Urban": 0},
		"AS": {"Population": 125},
	}, weighted)
}

func TestWeigherRegistry(t *testing.T) {
	registry := DefaultWeigherRegistry()

	t.Run("lists built-in strategies", func(t *testing.T) {
		assert.Equal(t, []string{WeightingIdentity, WeightingScaled}, registry.List())
	})

	t.Run("creates a registered strategy", func(t *testing.T) {
		w, err := registry.Create(WeightingScaled)
		require.NoError(t, err)
		assert.IsType(t, scaledWeigher{}, w)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := registry.Create("log")
		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("rejects duplicates and empty registrations", func(t *testing.T) {
		assert.Error(t, registry.Register(WeightingIdentity, NewIdentityWeigher))
		assert.Error(t, registry.Register("", NewIdentityWeigher))
		assert.Error(t, registry.Register("nil", nil))
	})

	t.Run("registers a new strategy", func(t *testing.T) {
		r := NewWeigherRegistry(nil)
		require.NoError(t, r.Register("custom", NewScaledWeigher))
		assert.Equal(t, []string{"custom"}, r.List())
	})
}
