// Package service holds the request rules of the stub market data API:
// parameter validation, defaults and error codes.
package service

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/marketprobe/internal/domain/dto"
	"github.com/guttosm/marketprobe/internal/domain/models"
	"github.com/guttosm/marketprobe/internal/schema"
	"github.com/guttosm/marketprobe/internal/storage"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Errors returned to clients verbatim.
var (
	ErrNoValidSymbols = dto.NewAPIError(http.StatusUnprocessableEntity, models.CodeNoValidSymbols,
		"At least one valid symbol must be provided")
	ErrValidation = dto.NewAPIError(http.StatusUnprocessableEntity, models.CodeValidationError,
		"Request failed with validation error")
)

// Messages for individual parameter failures.
const (
	MsgMissingSymbols = "You have to specify at least one symbol."
	MsgInvalidSort    = "sort: the value you selected is not a valid choice."
	MsgInvalidLimit   = "limit: must be an integer between 1 and 1000."
	MsgInvalidOffset  = "offset: must be a non-negative integer."
	MsgInvalidDate    = "must be a date in YYYY-MM-DD or ISO-8601 format."
)

// EODParams are the raw query values of GET /eod. Empty means absent.
type EODParams struct {
	Symbols  string
	Limit    string
	Offset   string
	Sort     string
	DateFrom string
	DateTo   string
	Exchange string
}

// PageParams are the raw query values of paginated reference endpoints.
type PageParams struct {
	Limit  string
	Offset string
}

// MarketService answers the stub's market data endpoints.
type MarketService interface {
	ListEOD(ctx context.Context, p EODParams) (*models.EODResponse, error)
	ListTimezones(ctx context.Context, p PageParams) (*models.TimezonesResponse, error)
	Ready(ctx context.Context) error
}

type marketService struct {
	repo storage.MarketRepository
}

func NewMarketService(repo storage.MarketRepository) MarketService {
	return &marketService{repo: repo}
}

func (s *marketService) ListEOD(ctx context.Context, p EODParams) (*models.EODResponse, error) {
	q, err := parseEOD(p)
	if err != nil {
		return nil, err
	}

	known, err := s.repo.KnownSymbols(ctx, q.Symbols)
	if err != nil {
		return nil, err
	}
	if len(known) == 0 {
		return nil, ErrNoValidSymbols
	}
	q.Symbols = known

	bars, total, err := s.repo.ListEOD(ctx, q)
	if err != nil {
		return nil, err
	}
	return &models.EODResponse{
		Pagination: models.Pagination{Limit: q.Limit, Offset: q.Offset, Count: len(bars), Total: total},
		Data:       bars,
	}, nil
}

func (s *marketService) ListTimezones(ctx context.Context, p PageParams) (*models.TimezonesResponse, error) {
	limit, offset, err := parsePage(p)
	if err != nil {
		return nil, err
	}
	tzs, total, err := s.repo.ListTimezones(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &models.TimezonesResponse{
		Pagination: models.Pagination{Limit: limit, Offset: offset, Count: len(tzs), Total: total},
		Data:       tzs,
	}, nil
}

func (s *marketService) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// parseEOD validates p and applies defaults: limit 100, offset 0, newest first.
func parseEOD(p EODParams) (storage.EODQuery, error) {
	q := storage.EODQuery{Exchange: strings.TrimSpace(p.Exchange)}

	for _, s := range strings.Split(p.Symbols, ",") {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			q.Symbols = append(q.Symbols, s)
		}
	}
	if len(q.Symbols) == 0 {
		return q, invalid("symbols", "missing_symbols", MsgMissingSymbols)
	}

	switch strings.ToUpper(strings.TrimSpace(p.Sort)) {
	case "", "DESC":
	case "ASC":
		q.Asc = true
	default:
		return q, invalid("sort", "invalid_choice", MsgInvalidSort)
	}

	var err error
	if q.Limit, q.Offset, err = parsePage(PageParams{Limit: p.Limit, Offset: p.Offset}); err != nil {
		return q, err
	}

	if q.DateFrom, err = parseDate("date_from", p.DateFrom); err != nil {
		return q, err
	}
	if q.DateTo, err = parseDate("date_to", p.DateTo); err != nil {
		return q, err
	}
	return q, nil
}

func parsePage(p PageParams) (limit, offset int, err error) {
	limit, offset = DefaultLimit, 0
	if s := strings.TrimSpace(p.Limit); s != "" {
		n, convErr := strconv.Atoi(s)
		if convErr != nil || n < 1 || n > MaxLimit {
			return 0, 0, invalid("limit", "invalid_value", MsgInvalidLimit)
		}
		limit = n
	}
	if s := strings.TrimSpace(p.Offset); s != "" {
		n, convErr := strconv.Atoi(s)
		if convErr != nil || n < 0 {
			return 0, 0, invalid("offset", "invalid_value", MsgInvalidOffset)
		}
		offset = n
	}
	return limit, offset, nil
}

func parseDate(param, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := schema.ParseDateTime(raw)
	if err != nil {
		return nil, invalid(param, "invalid_date", param+": "+MsgInvalidDate)
	}
	y, m, d := t.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &day, nil
}

// invalid reports a single bad parameter. The top-level message is the
// parameter message so clients that only read error.message still see it.
func invalid(param, key, message string) *dto.APIError {
	e := ErrValidation.WithField(param, key, message)
	e.Message = message
	return e
}
