package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"gongsil-api/internal/handler/httperr"
	"gongsil-api/internal/pkg/config"
	"gongsil-api/internal/pkg/errs"
	"gongsil-api/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

// limiter decides whether key may make one more request now.
type limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// localLimiter keeps one token bucket per client in memory.
type localLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	idle     time.Duration
	visitors map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLocalLimiter(perMinute, burst int) *localLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	if burst <= 0 {
		burst = 1
	}
	return &localLimiter{
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		idle:     10 * time.Minute,
		visitors: make(map[string]*visitor),
	}
}

func (l *localLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	if len(l.visitors) > 1024 {
		for k, other := range l.visitors {
			if now.Sub(other.lastSeen) > l.idle {
				delete(l.visitors, k)
			}
		}
	}
	return v.limiter.AllowN(now, 1), nil
}

// redisLimiter is a fixed one-minute window shared by every instance.
type redisLimiter struct {
	rdb    *redis.Client
	limit  int
	prefix string
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := fixedWindowScript.Run(ctx, l.rdb, []string{l.prefix + ":" + key}, time.Minute.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}
	return count <= int64(l.limit), nil
}

// RateLimit limits each client IP on the credentialed proxy routes. With Redis configured
// the window is shared across instances; when Redis fails the in-memory bucket decides.
func RateLimit(cfg config.Config, rdb *redis.Client, m *metrics.Service, logger *slog.Logger) gin.HandlerFunc {
	local := newLocalLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
	var primary limiter = local
	if rdb != nil {
		primary = &redisLimiter{rdb: rdb, limit: cfg.RateLimit.PerMinute + cfg.RateLimit.Burst, prefix: cfg.Cache.KeyPrefix + ":rl"}
	}

	return func(c *gin.Context) {
		key := c.ClientIP()
		ok, err := primary.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("rate limiter backend failed", slog.String("error", err.Error()))
			ok, _ = local.Allow(c.Request.Context(), key)
		}
		if !ok {
			m.RecordRateLimited(c.FullPath())
			c.Header("Retry-After", fmt.Sprintf("%d", 60/max(cfg.RateLimit.PerMinute, 1)+1))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Rate limit exceeded. Try again later.", nil)
			return
		}
		c.Next()
	}
}
