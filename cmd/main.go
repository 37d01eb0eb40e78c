package main

//
//  @title           marketprobe stub API
//  @version         1.0
//  @description     Local stand-in for the Marketstack EOD and timezone endpoints.
//  @termsOfService  https://github.com/guttosm/marketprobe
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/marketprobe
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        market
//  @tag.description End-of-day prices and reference data
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/marketprobe/config"
	_ "github.com/guttosm/marketprobe/docs" // swagger docs
	"github.com/guttosm/marketprobe/internal/app"
	"github.com/guttosm/marketprobe/internal/client"
	"github.com/guttosm/marketprobe/internal/fixtures"
	"github.com/guttosm/marketprobe/internal/logger"
	"github.com/guttosm/marketprobe/internal/market"
	"github.com/guttosm/marketprobe/internal/probe"
	"github.com/guttosm/marketprobe/internal/seed"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runProbe loads the session for ENV and runs the smoke checks against it.
// It returns the number of failed checks.
func runProbe(ctx context.Context, dir string, symbols []string) (int, error) {
	session, err := config.LoadSession(dir)
	if err != nil {
		return 0, err
	}
	logger.L().Info().Str("env", string(session.Env)).Str("base_url", session.BaseURL).Msg("probing environment")

	ctrl := market.NewController(client.New(session.ClientConfig()))
	rep := probe.Run(ctx, ctrl, probe.SmokeChecks(symbols))
	return rep.Failed(), nil
}

func splitSymbols(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// main is the entry point of the marketprobe tooling.
//
// Modes (selected via --mode flag):
//   - stub:     Starts the local Marketstack stand-in server.
//   - seed:     Loads fixture files from --dir into Postgres.
//   - fixtures: Writes the generated fixture files into --dir.
//   - probe:    Runs the smoke checks against the environment named by ENV.
//
// Flags:
//   - --mode:     Execution mode. Default: "stub".
//   - --dir:      Fixture directory for seed/fixtures, config directory for probe.
//   - --parallel: Files seeded concurrently (0=auto, max 8).
//   - --force:    Reload symbols that were already seeded.
//   - --symbols:  Comma separated symbols for probe mode.
//   - --port:     Port for stub mode. Defaults to SERVER_PORT.
func main() {
	ctx := context.Background()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "stub", "Mode: stub, seed, fixtures or probe")
	dir := flag.String("dir", "", "Fixture directory (seed, fixtures) or config directory (probe)")
	parallel := flag.Int("parallel", 0, "How many files to seed concurrently (0=auto, max 8)")
	force := flag.Bool("force", false, "Reload symbols even if already seeded (deletes their existing rows)")
	symbols := flag.String("symbols", strings.Join(probe.DefaultSymbols, ","), "Symbols checked in probe mode")
	port := flag.String("port", "", "Port for stub mode (default SERVER_PORT)")
	flag.Parse()

	switch *mode {
	case "stub":
		cfg, err := config.LoadStub()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("config error")
		}
		if *port != "" {
			cfg.Server.Port = *port
		}

		router, cleanup, err := app.InitializeStub(cfg)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("stub init error")
		}

		server := startServer(router, cfg.Server.Port)
		gracefulShutdown(ctx, server, cleanup)

	case "seed":
		cfg, err := config.LoadStub()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("config error")
		}
		if *dir == "" {
			*dir = "./data/fixtures"
		}

		repo, cleanup, err := app.OpenPostgresRepository(cfg.Postgres)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer cleanup()

		sum, err := seed.LoadDirectory(ctx, *dir, repo, seed.Options{Parallel: *parallel, Force: *force})
		if err != nil {
			cleanup()
			logger.L().Fatal().Err(err).Msg("seed failed")
		}
		logger.L().Info().Int("rows", sum.Rows).Int("files", sum.Files).Msg("seed completed successfully")

	case "fixtures":
		if *dir == "" {
			*dir = "./data/fixtures"
		}
		paths, err := fixtures.WriteDir(*dir)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("write fixtures failed")
		}
		logger.L().Info().Int("files", len(paths)).Str("dir", *dir).Msg("fixtures written")

	case "probe":
		if *dir == "" {
			*dir = "."
		}
		failed, err := runProbe(ctx, *dir, splitSymbols(*symbols))
		if err != nil {
			logger.L().Fatal().Err(err).Msg("probe setup failed")
		}
		if failed > 0 {
			logger.L().Error().Int("failed", failed).Msg("probe failed")
			os.Exit(1)
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
