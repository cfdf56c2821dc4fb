package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const StatisticsTableSchema = `
	CREATE TABLE IF NOT EXISTS statistics (
		country_code VARCHAR NOT NULL,
		country_name VARCHAR,
		region_code VARCHAR,
		stat_code VARCHAR NOT NULL,
		year INTEGER NOT NULL,
		value DOUBLE,
		PRIMARY KEY (country_code, stat_code, year)
	);
`

var bootQueries = []string{
	StatisticsTableSchema,
}

type Settings struct {
	DbPath  string
	Threads int
}

func NewDB(settings Settings) (*sql.DB, error) {
	threads := settings.Threads
	if threads <= 0 {
		threads = 4
	}

	dsn := fmt.Sprintf("%s?threads=%d", settings.DbPath, threads)
	c, err := duckdb.NewConnector(dsn, func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			if _, err := exec.ExecContext(context.Background(), query, nil); err != nil {
				return fmt.Errorf("boot query: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("duckdb connector: %w", err)
	}

	return sql.OpenDB(c), nil
}
