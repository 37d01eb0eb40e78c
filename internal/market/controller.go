// Package market groups the market data endpoints behind typed filters.
package market

import (
	"context"

	"github.com/guttosm/marketprobe/internal/client"
	"github.com/guttosm/marketprobe/internal/filters"
)

const (
	EODEndpoint       = "/eod"
	TimezonesEndpoint = "/timezones"
)

// Getter is the slice of the API client the controller needs.
type Getter interface {
	Get(ctx context.Context, endpoint string, params map[string]string) (*client.Response, error)
}

// Controller issues requests to the market endpoints. It returns raw
// responses; validating them is the caller's job.
type Controller struct {
	api Getter
}

func NewController(api Getter) *Controller {
	return &Controller{api: api}
}

// GetEOD requests end-of-day prices.
func (c *Controller) GetEOD(ctx context.Context, f filters.EOD) (*client.Response, error) {
	return c.api.Get(ctx, EODEndpoint, f.Query())
}

// GetTimezones requests the timezone reference list.
func (c *Controller) GetTimezones(ctx context.Context, f filters.Timezones) (*client.Response, error) {
	return c.api.Get(ctx, TimezonesEndpoint, f.Query())
}
