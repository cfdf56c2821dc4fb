package statistics

import (
	"context"
	"fmt"
	"io"

	"github.com/de-tools/market-atlas/pkg/services/config"
	"github.com/de-tools/market-atlas/pkg/store/csv"
	sqlstore "github.com/de-tools/market-atlas/pkg/store/sql"
)

const SourceCSV = "csv"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLoaderFromSettings builds a loader for the configured source. The closer
// releases the database connection of SQL sources.
func NewLoaderFromSettings(ctx context.Context, settings config.SourceSettings) (Loader, io.Closer, error) {
	switch settings.Kind {
	case SourceCSV:
		files, err := csv.DirSources(settings.Dir)
		if err != nil {
			return nil, nil, err
		}
		sources := make([]Source, 0, len(files))
		for _, f := range files {
			sources = append(sources, f)
		}
		l, err := NewLoader(sources...)
		if err != nil {
			return nil, nil, fmt.Errorf("no statistics files in %s: %w", settings.Dir, err)
		}
		return l, nopCloser{}, nil
	case sqlstore.DriverDuckDB, sqlstore.DriverPostgres:
		db, err := sqlstore.Open(ctx, sqlstore.Settings{Driver: settings.Kind, DSN: settings.DSN})
		if err != nil {
			return nil, nil, err
		}
		src, err := sqlstore.NewStatisticsSource(db, settings.Table)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		l, err := NewLoader(src)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return l, db, nil
	default:
		return nil, nil, fmt.Errorf("unsupported source kind %q", settings.Kind)
	}
}
