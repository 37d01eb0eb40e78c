package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/marketprobe/internal/domain/models"
)

// MsgTooManyRequests is returned once a client exceeds its window.
const MsgTooManyRequests = "You have exceeded the maximum rate limitation allowed on your subscription plan."

// visitor is a rate-limited client with request count and window start.
type visitor struct {
	windowStart time.Time
	count       int
}

type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	now      func() time.Time
}

// RateLimiter is an in-memory fixed-window limiter keyed by client IP.
//
// Behavior:
//   - Allows up to limit requests per window per client.
//   - limit <= 0 disables limiting.
//   - Exceeding the limit answers 429 with a too_many_requests envelope.
//
// Usage:
//
//	router.Use(middleware.RateLimiter(600, time.Minute))
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
	return rl.handle
}

func (rl *rateLimiter) handle(c *gin.Context) {
	if rl.limit <= 0 {
		c.Next()
		return
	}

	if !rl.allow(c.ClientIP()) {
		AbortWithError(c, http.StatusTooManyRequests, models.CodeTooManyRequests, MsgTooManyRequests, nil)
		return
	}
	c.Next()
}

func (rl *rateLimiter) allow(key string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok || now.Sub(v.windowStart) >= rl.window {
		rl.visitors[key] = &visitor{windowStart: now, count: 1}
		rl.evict(now)
		return true
	}
	v.count++
	return v.count <= rl.limit
}

// evict drops visitors whose window has expired. Called with mu held.
func (rl *rateLimiter) evict(now time.Time) {
	for k, v := range rl.visitors {
		if now.Sub(v.windowStart) >= rl.window {
			delete(rl.visitors, k)
		}
	}
}
