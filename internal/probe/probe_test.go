package probe

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/marketprobe/internal/api"
	"github.com/guttosm/marketprobe/internal/client"
	"github.com/guttosm/marketprobe/internal/market"
	"github.com/guttosm/marketprobe/internal/seed"
	"github.com/guttosm/marketprobe/internal/service"
	"github.com/guttosm/marketprobe/internal/storage"
)

func stubController(t *testing.T, key string) *market.Controller {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := storage.NewMemoryRepository()
	if err := seed.Defaults(context.Background(), repo); err != nil {
		t.Fatalf("seed: %v", err)
	}
	router := api.NewRouter(api.NewHandler(service.NewMarketService(repo)), api.RouterOptions{AccessKeys: []string{"probe-key"}})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	c := client.New(client.Config{BaseURL: srv.URL, APIVersion: "/v1", AccessKey: key}, client.WithHTTPClient(srv.Client()))
	return market.NewController(c)
}

func TestRun_AgainstStub(t *testing.T) {
	ctrl := stubController(t, "probe-key")

	rep := Run(context.Background(), ctrl, SmokeChecks(nil))
	if len(rep.Results) != len(DefaultSymbols)+2 {
		t.Fatalf("unexpected result count: %d", len(rep.Results))
	}
	if rep.Failed() != 0 {
		for _, r := range rep.Results {
			if r.Err != nil {
				t.Errorf("%s: %v", r.Name, r.Err)
			}
		}
		t.FailNow()
	}
}

func TestRun_WrongKeyFailsEveryCheck(t *testing.T) {
	ctrl := stubController(t, "wrong")

	rep := Run(context.Background(), ctrl, SmokeChecks([]string{"AAPL"}))
	if rep.Failed() != len(rep.Results) {
		t.Fatalf("expected every check to fail, got %d/%d", rep.Failed(), len(rep.Results))
	}
}

func TestRun_UnknownSymbolFails(t *testing.T) {
	ctrl := stubController(t, "probe-key")

	rep := Run(context.Background(), ctrl, SmokeChecks([]string{"IBM"}))
	if rep.Results[0].Err == nil {
		t.Fatalf("expected eod IBM to fail")
	}
	if rep.Failed() != 1 {
		t.Fatalf("expected only the IBM check to fail, got %d", rep.Failed())
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	checks := []Check{{Name: "never", Run: func(context.Context, *market.Controller) error {
		called = true
		return nil
	}}}
	rep := Run(ctx, nil, checks)
	if called {
		t.Fatalf("check must not run after cancellation")
	}
	if !errors.Is(rep.Results[0].Err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", rep.Results[0].Err)
	}
}
