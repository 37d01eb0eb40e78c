package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"syscall"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/marketprobe/config"
	"github.com/guttosm/marketprobe/internal/app"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, "0") // random port
	if srv == nil {
		t.Fatalf("expected server")
	}

	// Give server a moment to start
	time.Sleep(50 * time.Millisecond)

	shutdownCtx, c := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer c()
	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	srv := startServer(dummyHandler{}, "0")

	cleaned := make(chan struct{}, 1)
	go func() {
		gracefulShutdown(context.Background(), srv, func() { close(cleaned) })
	}()

	// Give the goroutine time to set up signal notifications
	time.Sleep(50 * time.Millisecond)

	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after SIGTERM")
	}
}

func TestSplitSymbols(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"AAPL,MSFT", []string{"AAPL", "MSFT"}},
		{" aapl , ,nvda ", []string{"AAPL", "NVDA"}},
		{"", nil},
	}
	for _, tc := range cases {
		if got := splitSymbols(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("splitSymbols(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRunProbe_AgainstStub(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, cleanup, err := app.InitializeStub(config.Stub{Store: config.StoreMemory, AccessKeys: []string{"cli-key"}})
	if err != nil {
		t.Fatalf("init stub: %v", err)
	}
	defer cleanup()
	srv := httptest.NewServer(router)
	defer srv.Close()

	dir := t.TempDir()
	files := map[string]string{
		config.EnvFile:    "ENV=local\n",
		config.ConfigFile: "local:\n  base_url: " + srv.URL + "\n  api_version: /v1\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("ENV", "")
	t.Setenv(config.AccessKeyEnv, "cli-key")

	failed, err := runProbe(context.Background(), dir, []string{"AAPL", "TSLA"})
	if err != nil {
		t.Fatalf("runProbe err: %v", err)
	}
	if failed != 0 {
		t.Fatalf("expected all checks to pass, %d failed", failed)
	}
}

func TestRunProbe_MissingSession(t *testing.T) {
	t.Setenv("ENV", "")
	if _, err := runProbe(context.Background(), t.TempDir(), nil); err == nil {
		t.Fatalf("expected error without .env")
	}
}
