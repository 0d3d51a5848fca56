package middleware

import (
	"net/http"
	"sync"
	"time"

	"clinica_odonto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	clientIdleTTL       = 15 * time.Minute
	clientCleanupPeriod = 10 * time.Minute
)

var errTooManyRequests = pkg.NewDomainErrorSimple("TOO_MANY_REQUESTS", "Muitas consultas em sequência. Tente novamente em instantes.", http.StatusTooManyRequests)

// IPRateLimiter keeps one token bucket per client IP. Idle clients are
// evicted after clientIdleTTL.
type IPRateLimiter struct {
	mu      sync.Mutex
	clients *cache.Cache
	rps     rate.Limit
	burst   int
	logger  *zap.Logger
}

func NewIPRateLimiter(rps float64, burst int, logger *zap.Logger) *IPRateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IPRateLimiter{
		clients: cache.New(clientIdleTTL, clientCleanupPeriod),
		rps:     rate.Limit(rps),
		burst:   burst,
		logger:  logger,
	}
}

func (l *IPRateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, found := l.clients.Get(ip); found {
		lim := v.(*rate.Limiter)
		l.clients.SetDefault(ip, lim)
		return lim
	}
	lim := rate.NewLimiter(l.rps, l.burst)
	l.clients.SetDefault(ip, lim)
	l.logger.Debug("[ratelimit] new client limiter", zap.String("ip", ip), zap.Float64("rps", float64(l.rps)), zap.Int("burst", l.burst))
	return lim
}

// Middleware rejects requests above the client's allowance with 429.
func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.limiterFor(ip).Allow() {
			path := c.FullPath()
			if path == "" {
				path = c.Request.URL.Path
			}
			rateLimitedTotal.WithLabelValues(path).Inc()
			l.logger.Warn("[ratelimit] request rejected", zap.String("ip", ip), zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(errTooManyRequests.HTTPStatus, errTooManyRequests.ToHTTPError())
			return
		}
		c.Next()
	}
}
