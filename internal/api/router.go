package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/marketprobe/internal/domain/models"
	"github.com/guttosm/marketprobe/internal/middleware"
)

// MsgInvalidAPIFunction is returned for unknown routes.
const MsgInvalidAPIFunction = "This API Function does not exist."

// RouterOptions configures the protection layers of the stub.
type RouterOptions struct {
	AccessKeys []string
	RateLimit  int           // requests per RateWindow per client; 0 disables
	RateWindow time.Duration // defaults to one minute
	Timeout    time.Duration // per-request deadline; defaults to 10s
}

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter).
//   - Adds a per-request timeout.
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the market data routes under /v1, behind the access key check.
//   - Answers unknown routes with invalid_api_function.
//
// Health and readiness endpoints are registered by app.InitializeStub().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	if opts.RateWindow <= 0 {
		opts.RateWindow = time.Minute
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(opts.RateLimit, opts.RateWindow),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), opts.Timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/v1", middleware.AccessKey(opts.AccessKeys))
	{
		v1.GET("/eod", handler.GetEOD)
		v1.GET("/timezones", handler.GetTimezones)
	}

	router.NoRoute(func(c *gin.Context) {
		middleware.AbortWithError(c, http.StatusNotFound, models.CodeInvalidAPIFunction, MsgInvalidAPIFunction, nil)
	})

	return router
}
