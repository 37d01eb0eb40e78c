//go:build !live

package scenarios

import (
	"fmt"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/marketprobe/config"
	"github.com/guttosm/marketprobe/internal/app"
	"github.com/guttosm/marketprobe/internal/client"
	"github.com/guttosm/marketprobe/internal/market"
)

var (
	apiClient *client.Client
	ctrl      *market.Controller
)

// TestMain serves the stub on a loopback port for the whole package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	router, cleanup, err := app.InitializeStub(config.Stub{
		Store:      config.StoreMemory,
		AccessKeys: []string{config.DefaultStubAccessKey},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "start stub: %v\n", err)
		os.Exit(1)
	}
	srv := httptest.NewServer(router)

	apiClient = client.New(client.Config{
		BaseURL:    srv.URL,
		APIVersion: "/v1",
		AccessKey:  config.DefaultStubAccessKey,
	}, client.WithHTTPClient(srv.Client()))
	ctrl = market.NewController(apiClient)

	code := m.Run()
	srv.Close()
	cleanup()
	os.Exit(code)
}
