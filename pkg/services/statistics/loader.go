package statistics

import (
	"context"
	"fmt"

	"github.com/de-tools/market-atlas/pkg/adapters"
	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/de-tools/market-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

// Source provides flat statistic rows, e.g. one CSV file or a SQL table.
type Source interface {
	Name() string
	Records(ctx context.Context) ([]store.StatisticRecord, error)
}

// Loader builds the in-memory store a report is computed from.
type Loader interface {
	Load(ctx context.Context) (domain.Store, error)
}

type loader struct {
	sources []Source
}

func NewLoader(sources ...Source) (Loader, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("at least one statistics source must be provided")
	}
	return &loader{sources: sources}, nil
}

// Load reads every source in order and merges the rows by country.
func (l *loader) Load(ctx context.Context) (domain.Store, error) {
	logger := zerolog.Ctx(ctx)

	var records []store.StatisticRecord
	for _, src := range l.sources {
		rows, err := src.Records(ctx)
		if err != nil {
			return domain.Store{}, fmt.Errorf("load %s: %w", src.Name(), err)
		}
		logger.Debug().
			Str("source", src.Name()).
			Int("records", len(rows)).
			Msg("statistics source loaded")
		records = append(records, rows...)
	}

	st := adapters.MapStoreStatisticsToDomain(records)
	logger.Info().
		Int("countries", len(st.Countries)).
		Int("records", len(records)).
		Msg("statistics ready")
	return st, nil
}
