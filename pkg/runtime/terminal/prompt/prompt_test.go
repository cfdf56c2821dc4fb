package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptStore() domain.Store {
	return domain.Store{Countries: []domain.Country{
		{
			Code: "FRA", RegionCode: "EU",
			Statistics: []domain.StatEntry{
				{StatCode: "Population", Year: 2019, Value: 100},
				{StatCode: "Income", Year: 2020, Value: 10},
			},
		},
		{
			Code: "JPN", RegionCode: "AS",
			Statistics: []domain.StatEntry{
				{StatCode: "Population", Year: 2021, Value: 130},
			},
		},
	}}
}

func newPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out), out
}

func TestPrompter_Weights(t *testing.T) {
	t.Run("retries until total is 100", func(t *testing.T) {
		p, out := newPrompter("50\n20\nabc\n10\n60\n40\n")

		weights, err := p.Weights([]string{"Income", "Population"})
		require.NoError(t, err)
		assert.Equal(t, domain.Weights{"Income": 60, "Population": 40}, weights)
		assert.Contains(t, out.String(), "please try again")
	})

	t.Run("fails on closed input", func(t *testing.T) {
		p, _ := newPrompter("50\n")

		_, err := p.Weights([]string{"Income", "Population"})
		assert.Error(t, err)
	})
}

func TestPrompter_Years(t *testing.T) {
	bounds := domain.YearRange{Start: 2019, End: 2021}

	t.Run("rejects out of bounds and reversed years", func(t *testing.T) {
		p, out := newPrompter("2010\n2020\n2021\n2019\n2019\n2020\n")

		years, err := p.Years(bounds)
		require.NoError(t, err)
		assert.Equal(t, domain.YearRange{Start: 2019, End: 2020}, years)
		assert.Equal(t, 2, strings.Count(out.String(), "please try again"))
	})

	t.Run("accepts answer without trailing newline", func(t *testing.T) {
		p, _ := newPrompter("2020\n2020")

		years, err := p.Years(bounds)
		require.NoError(t, err)
		assert.Equal(t, domain.YearRange{Start: 2020, End: 2020}, years)
	})
}

func TestPrompter_Regions(t *testing.T) {
	p, out := newPrompter("xx\n eu , as\n")

	regions, err := p.Regions([]string{"AS", "EU"})
	require.NoError(t, err)
	assert.Equal(t, []string{"AS", "EU"}, regions)
	assert.Contains(t, out.String(), "XX")
}

func TestPrompter_Configure(t *testing.T) {
	t.Run("full round", func(t *testing.T) {
		p, _ := newPrompter("30\n70\n2019\n2021\neu\n")

		cfg, err := p.Configure(promptStore(), domain.AveragingObserved)
		require.NoError(t, err)
		assert.Equal(t, domain.ReportConfig{
			Weights:   domain.Weights{"Income": 30, "Population": 70},
			Years:     domain.YearRange{Start: 2019, End: 2021},
			Regions:   []string{"EU"},
			Averaging: domain.AveragingObserved,
		}, cfg)
	})

	t.Run("empty store", func(t *testing.T) {
		p, _ := newPrompter("")

		_, err := p.Configure(domain.Store{}, domain.AveragingSpan)
		assert.ErrorIs(t, err, ErrNoStatistics)
	})
}

func TestPrompter_Confirm(t *testing.T) {
	cfg := domain.ReportConfig{
		Weights: domain.Weights{"Population": 100},
		Years:   domain.YearRange{Start: 2019, End: 2020},
		Regions: []string{"EU"},
	}

	tests := []struct {
		input string
		want  Action
	}{
		{"\n", ActionRun},
		{"x\n", ActionRun},
		{"c\n", ActionCancel},
		{"W\n", ActionChangeWeights},
		{"y\n", ActionChangeYears},
		{"R\n", ActionChangeRegions},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			p, out := newPrompter(tt.input)

			action, err := p.Confirm(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, action)
			assert.Contains(t, out.String(), "Weights: Population: 100%")
			assert.Contains(t, out.String(), "Years: 2019 to 2020")
		})
	}
}

func TestPrompter_Revise(t *testing.T) {
	cfg := domain.ReportConfig{
		Weights: domain.Weights{"Income": 50, "Population": 50},
		Years:   domain.YearRange{Start: 2019, End: 2020},
		Regions: []string{"EU"},
	}

	p, _ := newPrompter("as,eu\n")
	next, err := p.Revise(cfg, ActionChangeRegions, promptStore())
	require.NoError(t, err)

	assert.Equal(t, []string{"AS", "EU"}, next.Regions)
	assert.Equal(t, cfg.Weights, next.Weights)
	assert.Equal(t, cfg.Years, next.Years)
	assert.Equal(t, []string{"EU"}, cfg.Regions)
}
