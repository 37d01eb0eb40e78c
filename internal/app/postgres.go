package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/guttosm/marketprobe/config"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

// sqlOpener is an indirection for unit testing; defaults to sql.Open
var sqlOpener = sql.Open

// InitPostgres opens a PostgreSQL connection pool from cfg and pings it.
//
// Example usage:
//
//	db, err := app.InitPostgres(stubCfg.Postgres)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
func InitPostgres(cfg config.PostgresConfig) (*sql.DB, error) {
	db, err := sqlOpener("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}

// postgresOpener is an indirection used by OpenPostgresRepository; overridden in tests to avoid real connections.
var postgresOpener = InitPostgres
