package mw

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/linkdock/linkdock/internal/utils"
)

// ProbeLimitConfig tunes the per-IP token bucket guarding endpoints
// that trigger outbound requests (execute, ping). Health checks and
// CRUD are not limited.
type ProbeLimitConfig struct {
	Burst        int
	RefillPerMin int
	TrustProxy   bool
}

type probeBucket struct {
	tokens   float64
	lastRef  time.Time
	lastSeen time.Time
}

type probeLimiter struct {
	cfg      ProbeLimitConfig
	rate     float64
	capacity float64
	mu       sync.Mutex
	buckets  map[string]*probeBucket
}

func newProbeLimiter(cfg ProbeLimitConfig) *probeLimiter {
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	if cfg.RefillPerMin < 1 {
		cfg.RefillPerMin = 1
	}
	return &probeLimiter{
		cfg:      cfg,
		rate:     float64(cfg.RefillPerMin) / 60.0,
		capacity: float64(cfg.Burst),
		buckets:  make(map[string]*probeBucket),
	}
}

const probeBucketIdleTTL = 15 * time.Minute

func (l *probeLimiter) allow(key string, now time.Time) (ok bool, retryAfterSec int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Drop buckets idle long enough to be full again anyway.
	for ip, b := range l.buckets {
		if now.Sub(b.lastSeen) > probeBucketIdleTTL {
			delete(l.buckets, ip)
		}
	}

	b := l.buckets[key]
	if b == nil {
		b = &probeBucket{tokens: l.capacity, lastRef: now}
		l.buckets[key] = b
	}

	if elapsed := now.Sub(b.lastRef).Seconds(); elapsed > 0 {
		b.tokens = math.Min(l.capacity, b.tokens+elapsed*l.rate)
		b.lastRef = now
	}
	b.lastSeen = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true, 0
	}

	sec := int(math.Ceil((1.0 - b.tokens) / l.rate))
	if sec < 1 {
		sec = 1
	}
	return false, sec
}

// ProbeLimit rejects requests beyond the per-IP budget with a 429 and
// a Retry-After hint.
func ProbeLimit(cfg ProbeLimitConfig) func(http.Handler) http.Handler {
	l := newProbeLimiter(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := utils.ClientIP(r, cfg.TrustProxy)
			if ok, retry := l.allow(key, time.Now()); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
