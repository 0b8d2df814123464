package middleware

import (
	"calendar-webhook/pkg/log"
)

// Config holds the request guards applied in front of the webhook.
type Config struct {
	Secret          string   // value expected in X-WC-SECRET
	AllowedIPs      []string // exact IPs or CIDRs; empty allows everyone
	RateLimitPerMin int      // per client IP; 0 disables
	MaxBodyBytes    int64    // 0 disables
}

type Middleware struct {
	l            log.Logger
	secret       []byte
	allowlist    *ipAllowlist
	rateLimiter  *rateLimiter
	maxBodyBytes int64
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:            l,
		secret:       []byte(cfg.Secret),
		allowlist:    newIPAllowlist(cfg.AllowedIPs),
		maxBodyBytes: cfg.MaxBodyBytes,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
