package sql

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/market-atlas/pkg/models/store"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockSource(t *testing.T) (*StatisticsSource, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	src, err := NewStatisticsSource(sqlx.NewDb(db, "sqlmock"), "")
	require.NoError(t, err)
	return src, mock
}

func TestStatisticsSource_Records(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta("FROM statistics") + `\s+WHERE value IS NOT NULL\s+ORDER BY country_code, stat_code, year`
	cols := []string{"country_code", "country_name", "region_code", "stat_code", "year", "value"}

	t.Run("maps rows", func(t *testing.T) {
		src, mock := newMockSource(t)
		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows(cols).
			AddRow("FRA", "France", "EU", "Population", 2019, 100.0).
			AddRow("JPN", "", "AS", "Income", 2020, 7.25))

		records, err := src.Records(ctx)

		require.NoError(t, err)
		assert.Equal(t, []store.StatisticRecord{
			{CountryCode: "FRA", CountryName: "France", RegionCode: "EU", StatCode: "Population", Year: 2019, Value: 100},
			{CountryCode: "JPN", RegionCode: "AS", StatCode: "Income", Year: 2020, Value: 7.25},
		}, records)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure", func(t *testing.T) {
		src, mock := newMockSource(t)
		mock.ExpectQuery(query).WillReturnError(errors.New("connection reset"))

		_, err := src.Records(ctx)

		assert.ErrorContains(t, err, "query statistics: connection reset")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNewStatisticsSource(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	xdb := sqlx.NewDb(db, "sqlmock")

	src, err := NewStatisticsSource(xdb, "market.stats")
	require.NoError(t, err)
	assert.Equal(t, "sql:market.stats", src.Name())

	_, err = NewStatisticsSource(xdb, "stats; DROP TABLE x")
	assert.Error(t, err)

	_, err = NewStatisticsSource(nil, "")
	assert.Error(t, err)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Settings{Driver: "oracle"})
	assert.ErrorContains(t, err, `unsupported driver "oracle"`)
}

func TestOpen_DuckDB(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, Settings{Driver: DriverDuckDB, DSN: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx,
		`INSERT INTO statistics VALUES ('FRA', NULL, 'EU', 'Urban', 2020, 80.5), ('FRA', 'France', 'EU', 'Urban', 2021, NULL)`)
	require.NoError(t, err)

	src, err := NewStatisticsSource(db, "")
	require.NoError(t, err)

	records, err := src.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, []store.StatisticRecord{
		{CountryCode: "FRA", RegionCode: "EU", StatCode: "Urban", Year: 2020, Value: 80.5},
	}, records)
}
