package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/marketprobe/internal/service"
)

// Handler provides HTTP handlers for the stub market data endpoints.
//
// Responsibilities:
//   - Collect raw query parameters
//   - Delegate validation and lookup to the service layer
//   - Return the upstream-compatible JSON envelopes
//
// Failures are attached with c.Error and rendered by middleware.ErrorHandler.
type Handler struct {
	svc service.MarketService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.MarketService) *Handler {
	return &Handler{svc: svc}
}

// GetEOD handles GET /v1/eod requests.
//
// GetEOD godoc
// @Summary      End-of-day prices
// @Description  Returns daily bars for one or more symbols, newest first unless sort=ASC
// @Tags         market
// @Produce      json
// @Param        access_key  query     string  true   "API access key"
// @Param        symbols     query     string  true   "Comma separated symbols" example(AAPL,MSFT)
// @Param        limit       query     int     false  "Page size (1-1000)" default(100)
// @Param        offset      query     int     false  "Records to skip" default(0)
// @Param        sort        query     string  false  "ASC or DESC" default(DESC)
// @Param        date_from   query     string  false  "Start date YYYY-MM-DD" example(2025-09-01)
// @Param        date_to     query     string  false  "End date YYYY-MM-DD" example(2025-09-30)
// @Param        exchange    query     string  false  "Exchange MIC" example(XNAS)
// @Success      200  {object}  models.EODResponse    "Success"
// @Failure      401  {object}  models.ErrorResponse  "Missing or invalid access key"
// @Failure      422  {object}  models.ErrorResponse  "Validation error or no valid symbols"
// @Failure      429  {object}  models.ErrorResponse  "Rate limited"
// @Failure      500  {object}  models.ErrorResponse  "Internal error"
// @Router       /v1/eod [get]
func (h *Handler) GetEOD(c *gin.Context) {
	resp, err := h.svc.ListEOD(c.Request.Context(), service.EODParams{
		Symbols:  c.Query("symbols"),
		Limit:    c.Query("limit"),
		Offset:   c.Query("offset"),
		Sort:     c.Query("sort"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Exchange: c.Query("exchange"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTimezones handles GET /v1/timezones requests.
//
// GetTimezones godoc
// @Summary      Timezones
// @Description  Returns the timezone reference table
// @Tags         market
// @Produce      json
// @Param        access_key  query     string  true   "API access key"
// @Param        limit       query     int     false  "Page size (1-1000)" default(100)
// @Param        offset      query     int     false  "Records to skip" default(0)
// @Success      200  {object}  models.TimezonesResponse  "Success"
// @Failure      401  {object}  models.ErrorResponse      "Missing or invalid access key"
// @Failure      422  {object}  models.ErrorResponse      "Validation error"
// @Router       /v1/timezones [get]
func (h *Handler) GetTimezones(c *gin.Context) {
	resp, err := h.svc.ListTimezones(c.Request.Context(), service.PageParams{
		Limit:  c.Query("limit"),
		Offset: c.Query("offset"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
