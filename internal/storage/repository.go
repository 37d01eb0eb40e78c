// Package storage persists the market data served by the stub server.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/marketprobe/internal/domain/models"
)

// ErrDuplicateEOD is returned when a batch repeats a (symbol, date) pair,
// either within itself or against stored bars.
var ErrDuplicateEOD = errors.New("duplicate eod bar")

// EODQuery selects end-of-day bars. Limit and Offset are applied after
// filtering and sorting; Limit must be positive.
type EODQuery struct {
	Symbols  []string
	Exchange string
	DateFrom *time.Time
	DateTo   *time.Time
	Asc      bool
	Limit    int
	Offset   int
}

// MarketRepository defines the contract for market data storage.
type MarketRepository interface {
	// KnownSymbols returns the subset of symbols that have data, in request order.
	KnownSymbols(ctx context.Context, symbols []string) ([]string, error)
	// ListEOD returns one page of bars and the total number of matches.
	ListEOD(ctx context.Context, q EODQuery) ([]models.EOD, int, error)
	// ListTimezones returns one page of timezones and the total count.
	ListTimezones(ctx context.Context, limit, offset int) ([]models.Timezone, int, error)

	// InsertEODBatch appends bars atomically. It never overwrites: a bar whose
	// (symbol, date) already exists, or repeats inside the batch, fails the
	// whole batch. Callers replacing a symbol delete it first.
	InsertEODBatch(ctx context.Context, bars []models.EOD) error
	HasEOD(ctx context.Context, symbol string) (bool, error)
	DeleteEODBySymbol(ctx context.Context, symbol string) error
	// ReplaceTimezones swaps the whole timezone table.
	ReplaceTimezones(ctx context.Context, tzs []models.Timezone) error
	UpsertSeedLog(ctx context.Context, source string, rowCount int) error

	Ping(ctx context.Context) error
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return out
}
