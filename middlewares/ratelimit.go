package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// DefaultLimiterIdleTTL is how long a client's bucket survives without traffic.
const DefaultLimiterIdleTTL = 3 * time.Minute

// RateLimiterConfig holds the configuration for the rate limiter
type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
	// IdleTTL evicts buckets of clients unseen for this long. Zero means
	// DefaultLimiterIdleTTL.
	IdleTTL time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters hands out one token bucket per client IP and sweeps idle
// buckets at most once per IdleTTL.
type clientLimiters struct {
	mu        sync.Mutex
	config    RateLimiterConfig
	now       func() time.Time
	lastSweep time.Time
	limiters  map[string]*clientLimiter
}

func newClientLimiters(config RateLimiterConfig, now func() time.Time) *clientLimiters {
	if config.IdleTTL <= 0 {
		config.IdleTTL = DefaultLimiterIdleTTL
	}
	if now == nil {
		now = time.Now
	}
	return &clientLimiters{
		config:    config,
		now:       now,
		lastSweep: now(),
		limiters:  make(map[string]*clientLimiter),
	}
}

func (l *clientLimiters) get(client string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.config.IdleTTL {
		l.sweep(now)
	}

	entry, ok := l.limiters[client]
	if !ok {
		entry = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.Burst),
		}
		l.limiters[client] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// sweep must be called with mu held.
func (l *clientLimiters) sweep(now time.Time) {
	for client, entry := range l.limiters {
		if now.Sub(entry.lastSeen) >= l.config.IdleTTL {
			delete(l.limiters, client)
		}
	}
	l.lastSweep = now
}

// NewRateLimiterMiddleware rejects requests with 429 once a client exceeds
// its token bucket.
func NewRateLimiterMiddleware(config RateLimiterConfig) gin.HandlerFunc {
	limiters := newClientLimiters(config, nil)

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
