// Package fixtures produces the deterministic market data served by the stub
// server: end-of-day bars over NYSE trading days and the timezone table.
package fixtures

import (
	"hash/fnv"
	"math"
	"time"

	"github.com/guregu/null/v6"

	"github.com/guttosm/marketprobe/internal/domain/models"
)

// SymbolInfo describes one listed instrument.
type SymbolInfo struct {
	Symbol        string
	Name          string
	Exchange      string // MIC
	ExchangeCode  string
	AssetType     string
	PriceCurrency string
	BasePrice     float64
}

// Symbols are the instruments the fixtures cover.
var Symbols = []SymbolInfo{
	{Symbol: "AAPL", Name: "Apple Inc", Exchange: "XNAS", ExchangeCode: "NASDAQ", AssetType: "Stock", PriceCurrency: "usd", BasePrice: 225},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Exchange: "XNAS", ExchangeCode: "NASDAQ", AssetType: "Stock", PriceCurrency: "usd", BasePrice: 430},
	{Symbol: "TSLA", Name: "Tesla Inc", Exchange: "XNAS", ExchangeCode: "NASDAQ", AssetType: "Stock", PriceCurrency: "usd", BasePrice: 250},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Exchange: "XNAS", ExchangeCode: "NASDAQ", AssetType: "Stock", PriceCurrency: "usd", BasePrice: 120},
}

const (
	// HistoryDays is how many trading days of bars each symbol gets.
	HistoryDays = 300
)

// Anchor is the most recent trading day in the generated history.
var Anchor = date(2025, time.September, 30)

// Lookup returns the metadata for symbol.
func Lookup(symbol string) (SymbolInfo, bool) {
	for _, s := range Symbols {
		if s.Symbol == symbol {
			return s, true
		}
	}
	return SymbolInfo{}, false
}

// History returns HistoryDays bars for every symbol, newest first within a symbol.
func History() []models.EOD {
	days := LastNTradingDays(HistoryDays, Anchor)
	out := make([]models.EOD, 0, len(days)*len(Symbols))
	for _, s := range Symbols {
		out = append(out, GenerateEOD(s, days)...)
	}
	return out
}

// GenerateEOD builds one bar per day. Each bar depends only on the symbol and
// the date, so any window of days yields the same values.
func GenerateEOD(s SymbolInfo, days []time.Time) []models.EOD {
	out := make([]models.EOD, 0, len(days))
	for _, d := range days {
		out = append(out, bar(s, truncateToDate(d)))
	}
	return out
}

func bar(s SymbolInfo, d time.Time) models.EOD {
	r := newNoise(s.Symbol, d)

	// Slow cycle around the base price plus daily noise.
	cycle := 1 + 0.15*math.Sin(float64(d.Unix()/86400)/45)
	mid := s.BasePrice * cycle * (1 + (r.next()-0.5)*0.04)

	open := mid * (1 + (r.next()-0.5)*0.02)
	closePx := mid * (1 + (r.next()-0.5)*0.02)
	high := math.Max(open, closePx) * (1 + r.next()*0.01)
	low := math.Min(open, closePx) * (1 - r.next()*0.01)
	volume := math.Round(5e6 + r.next()*45e6)

	e := models.EOD{
		Open:          round4(open),
		High:          round4(high),
		Low:           round4(low),
		Close:         round4(closePx),
		Volume:        volume,
		AdjOpen:       round4(open),
		AdjClose:      round4(closePx),
		SplitFactor:   1,
		Dividend:      0,
		AdjHigh:       null.FloatFrom(round4(high)),
		AdjLow:        null.FloatFrom(round4(low)),
		AdjVolume:     null.FloatFrom(volume),
		Name:          null.StringFrom(s.Name),
		ExchangeCode:  null.StringFrom(s.ExchangeCode),
		AssetType:     null.StringFrom(s.AssetType),
		PriceCurrency: null.StringFrom(s.PriceCurrency),
		Symbol:        s.Symbol,
		Exchange:      s.Exchange,
		Date:          models.NewTimestamp(d),
	}

	// The upstream API leaves adjusted extremes empty on some days.
	if r.next() < 0.1 {
		e.AdjHigh = null.Float{}
		e.AdjLow = null.Float{}
		e.AdjVolume = null.Float{}
	}
	return e
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// noise is a small deterministic generator seeded from a symbol and a date.
type noise struct {
	state uint64
}

func newNoise(symbol string, d time.Time) *noise {
	h := fnv.New64a()
	_, _ = h.Write([]byte(symbol))
	_, _ = h.Write([]byte(d.Format(time.DateOnly)))
	return &noise{state: h.Sum64() | 1}
}

// next returns a value in [0, 1) (xorshift64*).
func (n *noise) next() float64 {
	n.state ^= n.state >> 12
	n.state ^= n.state << 25
	n.state ^= n.state >> 27
	v := n.state * 2685821657736338717
	return float64(v>>11) / (1 << 53)
}
