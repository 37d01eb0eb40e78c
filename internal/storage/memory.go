package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/guttosm/marketprobe/internal/domain/models"
)

// MemoryRepository keeps everything in process. Safe for concurrent use.
type MemoryRepository struct {
	mu        sync.RWMutex
	bars      map[string][]models.EOD // by symbol, newest first
	timezones []models.Timezone
	seedLog   map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		bars:    make(map[string][]models.EOD),
		seedLog: make(map[string]int),
	}
}

func (r *MemoryRepository) KnownSymbols(_ context.Context, symbols []string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	seen := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if len(r.bars[s]) > 0 {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListEOD(_ context.Context, q EODQuery) ([]models.EOD, int, error) {
	r.mu.RLock()
	var matches []models.EOD
	seen := make(map[string]struct{}, len(q.Symbols))
	for _, s := range q.Symbols {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		for _, b := range r.bars[s] {
			if q.Exchange != "" && b.Exchange != q.Exchange {
				continue
			}
			if q.DateFrom != nil && b.Date.Before(*q.DateFrom) {
				continue
			}
			if q.DateTo != nil && b.Date.After(*q.DateTo) {
				continue
			}
			matches = append(matches, b)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(matches, func(i, j int) bool {
		di, dj := matches[i].Date.Time, matches[j].Date.Time
		if !di.Equal(dj) {
			if q.Asc {
				return di.Before(dj)
			}
			return di.After(dj)
		}
		return matches[i].Symbol < matches[j].Symbol
	})
	return page(matches, q.Limit, q.Offset), len(matches), nil
}

func (r *MemoryRepository) ListTimezones(_ context.Context, limit, offset int) ([]models.Timezone, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.timezones, limit, offset), len(r.timezones), nil
}

// InsertEODBatch appends bars. On a duplicate (symbol, date) nothing is
// written and the error wraps ErrDuplicateEOD.
func (r *MemoryRepository) InsertEODBatch(_ context.Context, bars []models.EOD) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	type key struct {
		symbol string
		day    time.Time
	}
	batch := make(map[key]struct{}, len(bars))
	for _, b := range bars {
		k := key{b.Symbol, b.Date.UTC()}
		if _, dup := batch[k]; dup {
			return fmt.Errorf("%w: %s %s repeated in batch", ErrDuplicateEOD, b.Symbol, b.Date.Format(time.DateOnly))
		}
		batch[k] = struct{}{}
		for _, existing := range r.bars[b.Symbol] {
			if existing.Date.Equal(b.Date.Time) {
				return fmt.Errorf("%w: %s %s already stored", ErrDuplicateEOD, b.Symbol, b.Date.Format(time.DateOnly))
			}
		}
	}

	touched := make(map[string]struct{})
	for _, b := range bars {
		r.bars[b.Symbol] = append(r.bars[b.Symbol], b)
		touched[b.Symbol] = struct{}{}
	}
	for s := range touched {
		list := r.bars[s]
		sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date.Time) })
	}
	return nil
}

func (r *MemoryRepository) HasEOD(_ context.Context, symbol string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bars[symbol]) > 0, nil
}

func (r *MemoryRepository) DeleteEODBySymbol(_ context.Context, symbol string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bars, symbol)
	return nil
}

func (r *MemoryRepository) ReplaceTimezones(_ context.Context, tzs []models.Timezone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timezones = append([]models.Timezone(nil), tzs...)
	return nil
}

func (r *MemoryRepository) UpsertSeedLog(_ context.Context, source string, rowCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seedLog[source] = rowCount
	return nil
}

// SeedLog returns the recorded row count for source.
func (r *MemoryRepository) SeedLog(source string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.seedLog[source]
	return n, ok
}

func (r *MemoryRepository) Ping(context.Context) error { return nil }
