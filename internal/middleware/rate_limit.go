package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"pet-treatments/internal/platform/metrics"

	"github.com/juju/ratelimit"
)

// RateLimiter mantiene un token bucket por cliente (IP).
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*ratelimit.Bucket
	rate     float64
	capacity int64
}

func NewRateLimiter(ratePerSecond float64, burst int64) *RateLimiter {
	return &RateLimiter{
		buckets:  make(map[string]*ratelimit.Bucket),
		rate:     ratePerSecond,
		capacity: burst,
	}
}

func (rl *RateLimiter) bucket(client string) *ratelimit.Bucket {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[client]
	if !ok {
		b = ratelimit.NewBucketWithRate(rl.rate, rl.capacity)
		rl.buckets[client] = b
	}
	return b
}

// Prune descarta buckets llenos (clientes inactivos).
func (rl *RateLimiter) Prune() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for k, b := range rl.buckets {
		if b.Available() >= b.Capacity() {
			delete(rl.buckets, k)
			removed++
		}
	}
	return removed
}

// StartPruning corre Prune cada every hasta que ctx se cancele.
func (rl *RateLimiter) StartPruning(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := rl.Prune(); n > 0 {
					slog.Debug("rate limiter pruned idle clients", "removed", n)
				}
			}
		}
	}()
}

// Handler responde 429 cuando el cliente se queda sin tokens.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b := rl.bucket(clientKey(r))
		if b.TakeAvailable(1) == 0 {
			metrics.RateLimitedRequests.Inc()
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(rl.rate)))
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func retryAfterSeconds(rate float64) int {
	if rate <= 0 {
		return 1
	}
	secs := int(time.Duration(float64(time.Second) / rate).Seconds())
	if secs < 1 {
		return 1
	}
	return secs
}
