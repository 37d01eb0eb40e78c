package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	pq "github.com/lib/pq"

	"github.com/guttosm/marketprobe/internal/domain/models"
)

const eodColumns = `symbol, exchange, trade_date, open, high, low, close, volume,
	adj_high, adj_low, adj_close, adj_open, adj_volume, split_factor, dividend,
	name, exchange_code, asset_type, price_currency`

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a MarketRepository backed by PostgreSQL.
func NewPostgresRepository(db *sql.DB) MarketRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) KnownSymbols(ctx context.Context, symbols []string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT symbol FROM eod_prices WHERE symbol = ANY($1)`, pq.Array(symbols))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	found := make(map[string]struct{})
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		found[s] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// keep request order
	var out []string
	for _, s := range symbols {
		if _, ok := found[s]; ok {
			out = append(out, s)
			delete(found, s)
		}
	}
	return out, nil
}

// eodConditions builds the WHERE clause. $1 is always the symbol array;
// subsequent placeholders depend on the filters provided.
func eodConditions(q EODQuery) (string, []any) {
	conditions := "symbol = ANY($1)"
	args := []any{pq.Array(q.Symbols)}
	if q.Exchange != "" {
		args = append(args, q.Exchange)
		conditions += fmt.Sprintf(" AND exchange = $%d", len(args))
	}
	if q.DateFrom != nil {
		args = append(args, *q.DateFrom)
		conditions += fmt.Sprintf(" AND trade_date >= $%d", len(args))
	}
	if q.DateTo != nil {
		args = append(args, *q.DateTo)
		conditions += fmt.Sprintf(" AND trade_date <= $%d", len(args))
	}
	return conditions, args
}

func (r *postgresRepository) ListEOD(ctx context.Context, q EODQuery) ([]models.EOD, int, error) {
	conditions, args := eodConditions(q)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM eod_prices WHERE `+conditions, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dir := "DESC"
	if q.Asc {
		dir = "ASC"
	}
	args = append(args, q.Limit, q.Offset)
	query := fmt.Sprintf(`SELECT %s FROM eod_prices WHERE %s ORDER BY trade_date %s, symbol ASC LIMIT $%d OFFSET $%d`,
		eodColumns, conditions, dir, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.EOD{}
	for rows.Next() {
		var e models.EOD
		var day time.Time
		if err := rows.Scan(
			&e.Symbol, &e.Exchange, &day, &e.Open, &e.High, &e.Low, &e.Close, &e.Volume,
			&e.AdjHigh, &e.AdjLow, &e.AdjClose, &e.AdjOpen, &e.AdjVolume, &e.SplitFactor, &e.Dividend,
			&e.Name, &e.ExchangeCode, &e.AssetType, &e.PriceCurrency,
		); err != nil {
			return nil, 0, err
		}
		e.Date = models.NewTimestamp(day.UTC())
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *postgresRepository) ListTimezones(ctx context.Context, limit, offset int) ([]models.Timezone, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM timezones`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT timezone, abbr, abbr_dst FROM timezones ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.Timezone{}
	for rows.Next() {
		var tz models.Timezone
		if err := rows.Scan(&tz.Timezone, &tz.Abbr, &tz.AbbrDST); err != nil {
			return nil, 0, err
		}
		out = append(out, tz)
	}
	return out, total, rows.Err()
}

// InsertEODBatch inserts bars into DB in a single transaction using COPY.
// A primary key conflict rolls back the batch and wraps ErrDuplicateEOD.
func (r *postgresRepository) InsertEODBatch(ctx context.Context, bars []models.EOD) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.ExecContext(ctx, `SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"eod_prices",
		"symbol", "exchange", "trade_date", "open", "high", "low", "close", "volume",
		"adj_high", "adj_low", "adj_close", "adj_open", "adj_volume", "split_factor", "dividend",
		"name", "exchange_code", "asset_type", "price_currency",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, b := range bars {
		if _, err := stmt.ExecContext(ctx,
			b.Symbol, b.Exchange, b.Date.UTC(), b.Open, b.High, b.Low, b.Close, b.Volume,
			b.AdjHigh, b.AdjLow, b.AdjClose, b.AdjOpen, b.AdjVolume, b.SplitFactor, b.Dividend,
			b.Name, b.ExchangeCode, b.AssetType, b.PriceCurrency,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return duplicateErr(err)
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return duplicateErr(err)
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return duplicateErr(err)
	}

	return duplicateErr(tx.Commit())
}

// duplicateErr maps a unique_violation onto ErrDuplicateEOD.
func duplicateErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrDuplicateEOD, pqErr.Detail)
	}
	return err
}

func (r *postgresRepository) HasEOD(ctx context.Context, symbol string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM eod_prices WHERE symbol = $1)`, symbol).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresRepository) DeleteEODBySymbol(ctx context.Context, symbol string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM eod_prices WHERE symbol = $1`, symbol)
	return err
}

func (r *postgresRepository) ReplaceTimezones(ctx context.Context, tzs []models.Timezone) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM timezones`); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, tz := range tzs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO timezones (timezone, abbr, abbr_dst) VALUES ($1, $2, $3)`,
			tz.Timezone, tz.Abbr, tz.AbbrDST,
		); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// UpsertSeedLog records (or updates) the row count loaded from one fixture file.
func (r *postgresRepository) UpsertSeedLog(ctx context.Context, source string, rowCount int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO seed_log (source, row_count)
		VALUES ($1, $2)
		ON CONFLICT (source)
		DO UPDATE SET row_count = EXCLUDED.row_count,
		              seeded_at = NOW()
	`, source, rowCount)
	return err
}

func (r *postgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
