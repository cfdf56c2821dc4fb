package report

import (
	"testing"

	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(cfg *domain.ReportConfig)
		wantErr error
	}{
		{
			name:   "valid",
			modify: func(cfg *domain.ReportConfig) {},
		},
		{
			name:   "single year",
			modify: func(cfg *domain.ReportConfig) { cfg.Years.End = cfg.Years.Start },
		},
		{
			name:    "weights below 100",
			modify:  func(cfg *domain.ReportConfig) { cfg.Weights["Urban"] = 10 },
			wantErr: ErrInvalidWeights,
		},
		{
			name:    "weight above 100",
			modify:  func(cfg *domain.ReportConfig) { cfg.Weights = domain.Weights{"Income": 140, "Urban": -40} },
			wantErr: ErrInvalidWeights,
		},
		{
			name:    "no weights",
			modify:  func(cfg *domain.ReportConfig) { cfg.Weights = nil },
			wantErr: ErrInvalidWeights,
		},
		{
			name:    "end before start",
			modify:  func(cfg *domain.ReportConfig) { cfg.Years = domain.YearRange{Start: 2020, End: 2018} },
			wantErr: ErrConfiguration,
		},
		{
			name:    "no regions",
			modify:  func(cfg *domain.ReportConfig) { cfg.Regions = nil },
			wantErr: ErrConfiguration,
		},
		{
			name:    "blank region",
			modify:  func(cfg *domain.ReportConfig) { cfg.Regions = []string{""} },
			wantErr: ErrConfiguration,
		},
		{
			name:    "unknown averaging",
			modify:  func(cfg *domain.ReportConfig) { cfg.Averaging = "median" },
			wantErr: ErrConfiguration,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(2019, 2020, "EU")
			tc.modify(&cfg)

			err := ValidateConfig(cfg)

			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
