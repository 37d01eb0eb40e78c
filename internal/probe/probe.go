// Package probe runs quick contract checks against a configured environment
// outside of go test, for the CLI probe mode.
package probe

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/guttosm/marketprobe/internal/client"
	"github.com/guttosm/marketprobe/internal/domain/models"
	"github.com/guttosm/marketprobe/internal/filters"
	"github.com/guttosm/marketprobe/internal/logger"
	"github.com/guttosm/marketprobe/internal/market"
	"github.com/guttosm/marketprobe/internal/schema"
)

// DefaultSymbols are probed when none are given.
var DefaultSymbols = []string{"AAPL", "MSFT", "TSLA", "NVDA"}

// Check is one named probe.
type Check struct {
	Name string
	Run  func(ctx context.Context, ctrl *market.Controller) error
}

// Result is the outcome of one Check.
type Result struct {
	Name    string
	Err     error
	Elapsed time.Duration
}

// Report collects results in execution order.
type Report struct {
	Results []Result
}

// Failed returns the number of failed checks.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// SmokeChecks returns the EOD smoke check for each symbol, the invalid
// symbol check and the timezone table check.
func SmokeChecks(symbols []string) []Check {
	if len(symbols) == 0 {
		symbols = DefaultSymbols
	}
	checks := make([]Check, 0, len(symbols)+2)
	for _, s := range symbols {
		checks = append(checks, Check{Name: "eod " + s, Run: eodSmoke(s)})
	}
	return append(checks,
		Check{Name: "eod invalid symbol", Run: eodInvalidSymbol},
		Check{Name: "timezones", Run: timezonesSmoke},
	)
}

// Run executes checks sequentially. It keeps going after a failure so the
// report covers every check; ctx cancellation stops it early.
func Run(ctx context.Context, ctrl *market.Controller, checks []Check) Report {
	log := logger.Component("probe")
	var rep Report
	for _, c := range checks {
		if ctx.Err() != nil {
			rep.Results = append(rep.Results, Result{Name: c.Name, Err: ctx.Err()})
			continue
		}
		start := time.Now()
		err := c.Run(ctx, ctrl)
		res := Result{Name: c.Name, Err: err, Elapsed: time.Since(start)}
		rep.Results = append(rep.Results, res)

		if err != nil {
			log.Error().Str("check", c.Name).Err(err).Dur("elapsed", res.Elapsed).Msg("check failed")
			continue
		}
		log.Info().Str("check", c.Name).Dur("elapsed", res.Elapsed).Msg("check passed")
	}
	log.Info().Int("checks", len(rep.Results)).Int("failed", rep.Failed()).Msg("probe summary")
	return rep
}

func eodSmoke(symbol string) func(context.Context, *market.Controller) error {
	return func(ctx context.Context, ctrl *market.Controller) error {
		resp, err := ctrl.GetEOD(ctx, filters.EOD{Symbols: symbol})
		if err != nil {
			return err
		}
		if err := expectStatus(resp, http.StatusOK); err != nil {
			return err
		}
		out, err := schema.Decode[models.EODResponse](resp.Body, models.EODResponseShape)
		if err != nil {
			return err
		}
		switch {
		case out.Pagination.Total <= 0:
			return fmt.Errorf("pagination.total is %d", out.Pagination.Total)
		case len(out.Data) == 0:
			return fmt.Errorf("empty data")
		case out.Data[0].Symbol != symbol:
			return fmt.Errorf("data[0].symbol is %q, want %q", out.Data[0].Symbol, symbol)
		}
		return nil
	}
}

func eodInvalidSymbol(ctx context.Context, ctrl *market.Controller) error {
	resp, err := ctrl.GetEOD(ctx, filters.EOD{Symbols: "INVALID_SYMBOL"})
	if err != nil {
		return err
	}
	if err := expectStatus(resp, http.StatusUnprocessableEntity); err != nil {
		return err
	}
	out, err := schema.Decode[models.ErrorResponse](resp.Body, models.ErrorResponseShape)
	if err != nil {
		return err
	}
	if out.Error.Code != models.CodeNoValidSymbols {
		return fmt.Errorf("error.code is %q, want %q", out.Error.Code, models.CodeNoValidSymbols)
	}
	return nil
}

func timezonesSmoke(ctx context.Context, ctrl *market.Controller) error {
	resp, err := ctrl.GetTimezones(ctx, filters.Timezones{})
	if err != nil {
		return err
	}
	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}
	out, err := schema.Decode[models.TimezonesResponse](resp.Body, models.TimezonesResponseShape)
	if err != nil {
		return err
	}
	for _, tz := range out.Data {
		if tz.Timezone == "America/New_York" {
			if tz.Abbr != "EST" || tz.AbbrDST != "EDT" {
				return fmt.Errorf("America/New_York abbreviations are %s/%s", tz.Abbr, tz.AbbrDST)
			}
			return nil
		}
	}
	return fmt.Errorf("America/New_York not in first %d timezones", len(out.Data))
}

func expectStatus(resp *client.Response, want int) error {
	if resp.StatusCode == want {
		return nil
	}
	return fmt.Errorf("status %d, want %d (request_id %s)", resp.StatusCode, want, resp.RequestID)
}
