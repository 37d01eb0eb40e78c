package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/marketprobe/config"
	"github.com/guttosm/marketprobe/internal/api"
	"github.com/guttosm/marketprobe/internal/logger"
	"github.com/guttosm/marketprobe/internal/seed"
	"github.com/guttosm/marketprobe/internal/service"
	"github.com/guttosm/marketprobe/internal/storage"
)

// InitializeStub sets up all stub server dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Opens the backing store selected by cfg.Store.
//   - Initializes the service layer and HTTP handlers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// The memory store is filled with the generated fixtures; a Postgres store
// must be seeded beforehand with the seed command.
func InitializeStub(cfg config.Stub) (*gin.Engine, func(), error) {
	repo, cleanup, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	svc := service.NewMarketService(repo)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, api.RouterOptions{
		AccessKeys: cfg.AccessKeys,
		RateLimit:  cfg.RateLimit,
	})

	api.NewHealthHandler(svc.Ready).Register(router)

	logger.L().Info().Str("store", cfg.Store).Int("access_keys", len(cfg.AccessKeys)).Msg("stub initialized")
	return router, cleanup, nil
}

func openStore(cfg config.Stub) (storage.MarketRepository, func(), error) {
	switch cfg.Store {
	case config.StorePostgres:
		repo, cleanup, err := OpenPostgresRepository(cfg.Postgres)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		return repo, cleanup, nil
	case config.StoreMemory, "":
		repo := storage.NewMemoryRepository()
		if err := seed.Defaults(context.Background(), repo); err != nil {
			return nil, nil, fmt.Errorf("failed to seed memory store: %w", err)
		}
		return repo, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// OpenPostgresRepository connects to Postgres and wraps the handle in a
// repository. The returned func closes the connection.
func OpenPostgresRepository(cfg config.PostgresConfig) (storage.MarketRepository, func(), error) {
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, err
	}
	return storage.NewPostgresRepository(db), func() { _ = db.Close() }, nil
}
