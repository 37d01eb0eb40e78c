// Package seed loads market data fixtures into a storage.MarketRepository.
package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/marketprobe/internal/fixtures"
	"github.com/guttosm/marketprobe/internal/logger"
	"github.com/guttosm/marketprobe/internal/storage"
)

const (
	defaultBatchSize = 5000
	maxParallel      = 8
	// DefaultsSource is the seed log entry written by Defaults.
	DefaultsSource = "generated"
)

// Options tune LoadDirectory.
type Options struct {
	// Parallel caps concurrent files; <= 0 means min(8, NumCPU).
	Parallel int
	// Force deletes and reloads symbols that already have data.
	Force bool
	// BatchSize is the insert batch size; <= 0 means 5000.
	BatchSize int
}

// Summary reports what LoadDirectory did.
type Summary struct {
	Rows      int
	Files     int
	Skipped   []string
	Timezones int
}

// LoadDirectory loads every eod_<SYMBOL>.json envelope and the optional
// timezones.json table from dir into repo.
//
// Behavior:
//   - Every file is validated against the API response shape before any row is written.
//   - Symbols that already have data are skipped unless opts.Force is set.
//   - Files are processed concurrently; the first error cancels the rest.
func LoadDirectory(ctx context.Context, dir string, repo storage.MarketRepository, opts Options) (Summary, error) {
	var sum Summary

	files, err := filepath.Glob(filepath.Join(dir, fixtures.EODFilePrefix+"*"+fixtures.EODFileSuffix))
	if err != nil {
		return sum, fmt.Errorf("list %s: %w", dir, err)
	}
	if len(files) == 0 {
		return sum, fmt.Errorf("no %s*%s files in %s", fixtures.EODFilePrefix, fixtures.EODFileSuffix, dir)
	}
	sort.Strings(files)

	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	parallel := parallelism(opts.Parallel)
	logger.L().Info().Int("files", len(files)).Str("dir", dir).Int("max_parallel", parallel).Msg("seed start")

	tzPath := filepath.Join(dir, fixtures.TimezonesFile)
	if _, err := os.Stat(tzPath); err == nil {
		n, err := loadTimezones(ctx, tzPath, repo)
		if err != nil {
			return sum, err
		}
		sum.Timezones = n
	} else if !os.IsNotExist(err) {
		return sum, fmt.Errorf("stat %s: %w", tzPath, err)
	}

	results := make([]fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, file := range files {
		g.Go(func() error {
			res, err := loadEODFile(gctx, file, repo, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, err
	}

	for _, r := range results {
		if r.skipped {
			sum.Skipped = append(sum.Skipped, r.symbol)
			continue
		}
		sum.Files++
		sum.Rows += r.rows
	}
	logger.L().Info().Int("files", sum.Files).Int("rows", sum.Rows).Strs("skipped", sum.Skipped).Int("timezones", sum.Timezones).Msg("seed done")
	return sum, nil
}

type fileResult struct {
	symbol  string
	rows    int
	skipped bool
}

func loadEODFile(ctx context.Context, path string, repo storage.MarketRepository, opts Options) (fileResult, error) {
	start := time.Now()
	base := filepath.Base(path)
	symbol, ok := fixtures.SymbolFromFileName(base)
	if !ok {
		return fileResult{}, fmt.Errorf("file %s: cannot derive symbol from name", base)
	}
	res := fileResult{symbol: symbol}

	exists, err := repo.HasEOD(ctx, symbol)
	if err != nil {
		return res, fmt.Errorf("file %s: check existing: %w", base, err)
	}
	if exists && !opts.Force {
		logger.L().Info().Str("file", base).Bool("skipped", true).Msg("already seeded")
		res.skipped = true
		return res, nil
	}

	bars, err := readEOD(path, symbol)
	if err != nil {
		return res, fmt.Errorf("file %s: %w", base, err)
	}

	if exists {
		if err := repo.DeleteEODBySymbol(ctx, symbol); err != nil {
			return res, fmt.Errorf("file %s: delete existing: %w", base, err)
		}
	}

	for from := 0; from < len(bars); from += opts.BatchSize {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		to := min(from+opts.BatchSize, len(bars))
		if err := repo.InsertEODBatch(ctx, bars[from:to]); err != nil {
			return res, fmt.Errorf("file %s: insert rows %d-%d: %w", base, from, to, err)
		}
	}
	res.rows = len(bars)

	if err := repo.UpsertSeedLog(ctx, base, res.rows); err != nil {
		return res, fmt.Errorf("file %s: upsert seed log: %w", base, err)
	}
	logger.L().Info().Str("file", base).Int("rows", res.rows).Dur("elapsed", time.Since(start)).Bool("force", opts.Force).Msg("file done")
	return res, nil
}

func loadTimezones(ctx context.Context, path string, repo storage.MarketRepository) (int, error) {
	base := filepath.Base(path)
	tzs, err := readTimezones(path)
	if err != nil {
		return 0, fmt.Errorf("file %s: %w", base, err)
	}
	if err := repo.ReplaceTimezones(ctx, tzs); err != nil {
		return 0, fmt.Errorf("file %s: replace timezones: %w", base, err)
	}
	if err := repo.UpsertSeedLog(ctx, base, len(tzs)); err != nil {
		return 0, fmt.Errorf("file %s: upsert seed log: %w", base, err)
	}
	return len(tzs), nil
}

// Defaults fills repo with the generated fixture history and the embedded
// timezone table without touching the filesystem.
func Defaults(ctx context.Context, repo storage.MarketRepository) error {
	bars := fixtures.History()
	if err := repo.InsertEODBatch(ctx, bars); err != nil {
		return fmt.Errorf("insert generated bars: %w", err)
	}
	tzs, err := fixtures.Timezones()
	if err != nil {
		return fmt.Errorf("decode embedded timezones: %w", err)
	}
	if err := repo.ReplaceTimezones(ctx, tzs); err != nil {
		return fmt.Errorf("replace timezones: %w", err)
	}
	if err := repo.UpsertSeedLog(ctx, DefaultsSource, len(bars)+len(tzs)); err != nil {
		return fmt.Errorf("upsert seed log: %w", err)
	}
	logger.L().Debug().Int("bars", len(bars)).Int("timezones", len(tzs)).Msg("generated fixtures loaded")
	return nil
}

func parallelism(requested int) int {
	if requested > 0 {
		return min(requested, maxParallel)
	}
	return min(runtime.NumCPU(), maxParallel)
}
