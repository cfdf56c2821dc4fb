package sql

import (
	"context"
	"fmt"
	"regexp"

	"github.com/de-tools/market-atlas/pkg/models/store"
	"github.com/jmoiron/sqlx"
)

const DefaultTable = "statistics"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// StatisticsSource reads statistic rows from a SQL table with the columns
// country_code, country_name, region_code, stat_code, year and value.
type StatisticsSource struct {
	db    *sqlx.DB
	table string
}

func NewStatisticsSource(db *sqlx.DB, table string) (*StatisticsSource, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &StatisticsSource{db: db, table: table}, nil
}

func (s *StatisticsSource) Name() string {
	return "sql:" + s.table
}

func (s *StatisticsSource) Records(ctx context.Context) ([]store.StatisticRecord, error) {
	query := fmt.Sprintf(`
		SELECT
			country_code,
			COALESCE(country_name, '') AS country_name,
			COALESCE(region_code, '') AS region_code,
			stat_code,
			year,
			value
		FROM %s
		WHERE value IS NOT NULL
		ORDER BY country_code, stat_code, year
	`, s.table)

	records := make([]store.StatisticRecord, 0)
	if err := s.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}
	return records, nil
}
