package middleware

import (
	"net"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"calendar-webhook/pkg/response"
)

// IPAllowlist rejects clients outside the configured list with 403.
func (m Middleware) IPAllowlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.allowlist.allows(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware.IPAllowlist: IP %s not whitelisted", c.ClientIP())
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// RateLimit enforces the per-client budget with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rateLimiter != nil && !m.rateLimiter.Allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

type ipAllowlist struct {
	ips  map[string]bool
	nets []*net.IPNet
}

// newIPAllowlist parses entries once. Unparsable CIDRs are skipped.
func newIPAllowlist(entries []string) *ipAllowlist {
	al := &ipAllowlist{ips: make(map[string]bool)}
	for _, entry := range entries {
		if strings.Contains(entry, "/") {
			_, ipNet, err := net.ParseCIDR(entry)
			if err != nil {
				continue
			}
			al.nets = append(al.nets, ipNet)
			continue
		}
		al.ips[entry] = true
	}
	return al
}

func (al *ipAllowlist) allows(ip string) bool {
	if len(al.ips) == 0 && len(al.nets) == 0 {
		return true // No IP restriction
	}
	if al.ips[ip] {
		return true
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	for _, ipNet := range al.nets {
		if ipNet.Contains(parsed) {
			return true
		}
	}
	return false
}

// rateLimiter keeps one token bucket per key; idle keys expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
