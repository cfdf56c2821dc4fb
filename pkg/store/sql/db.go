package sql

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/market-atlas/pkg/store/duckdb"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

type Settings struct {
	Driver string
	DSN    string
}

// Open connects to the statistics database described by settings.
func Open(ctx context.Context, settings Settings) (*sqlx.DB, error) {
	switch settings.Driver {
	case DriverDuckDB:
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: settings.DSN})
		if err != nil {
			return nil, fmt.Errorf("failed to open duckdb: %w", err)
		}
		return sqlx.NewDb(db, "duckdb"), nil
	case DriverPostgres:
		db, err := sqlx.Open("pgx", settings.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", settings.Driver)
	}
}
