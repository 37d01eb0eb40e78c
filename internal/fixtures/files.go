package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/guttosm/marketprobe/internal/domain/models"
)

const (
	// EODFilePrefix and EODFileSuffix frame the symbol in EOD fixture file names.
	EODFilePrefix = "eod_"
	EODFileSuffix = ".json"
	// TimezonesFile holds the timezone table.
	TimezonesFile = "timezones.json"
)

// EODFileName returns the fixture file name for symbol, e.g. eod_AAPL.json.
func EODFileName(symbol string) string {
	return EODFilePrefix + symbol + EODFileSuffix
}

// SymbolFromFileName is the inverse of EODFileName.
func SymbolFromFileName(name string) (string, bool) {
	base := filepath.Base(name)
	if !strings.HasPrefix(base, EODFilePrefix) || !strings.HasSuffix(base, EODFileSuffix) {
		return "", false
	}
	sym := strings.TrimSuffix(strings.TrimPrefix(base, EODFilePrefix), EODFileSuffix)
	return sym, sym != ""
}

// WriteDir writes one EOD envelope per symbol plus the timezone table into
// dir, creating it if needed. It returns the written paths.
func WriteDir(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	days := LastNTradingDays(HistoryDays, Anchor)
	var paths []string
	for _, s := range Symbols {
		bars := GenerateEOD(s, days)
		env := models.EODResponse{
			Pagination: models.Pagination{Limit: len(bars), Offset: 0, Count: len(bars), Total: len(bars)},
			Data:       bars,
		}
		p := filepath.Join(dir, EODFileName(s.Symbol))
		if err := writeJSON(p, env); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}

	p := filepath.Join(dir, TimezonesFile)
	if err := os.WriteFile(p, timezonesJSON, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", p, err)
	}
	return append(paths, p), nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
