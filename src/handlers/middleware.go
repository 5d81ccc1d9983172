package handlers

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/username/taxdraft/src/logger"
	"github.com/username/taxdraft/src/security"
	"github.com/username/taxdraft/src/utils"
)

// Define a custom type for context keys to avoid collisions.
// This type is unexported, making it unique to this package.
type contextKey string

const requestIDContextKey contextKey = "requestID"

// RequestIDMiddleware tags every request with an ID, surfaced in the
// X-Request-ID response header and in log lines. A client-supplied ID is
// kept so callers can correlate across systems.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request ID, or an empty string when the
// middleware did not run.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// APIKeyMiddleware rejects requests whose X-API-Key header does not verify.
// The check runs before any computation.
func APIKeyMiddleware(verifier security.KeyVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !verifier.Verify(r.Header.Get("X-API-Key")) {
				logger.L.Warn("API key verification failed",
					"method", r.Method,
					"path", r.URL.Path,
					"remoteAddr", r.RemoteAddr,
					"requestID", RequestIDFromContext(r.Context()))
				utils.SendJSONError(w, "Invalid API key", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientRateLimiter keeps one token bucket per client address in a TTL
// cache, so one noisy client cannot starve the rest. This registry is
// infrastructure state only; no computation results are ever cached.
type ClientRateLimiter struct {
	limiters *cache.Cache
	rps      rate.Limit
	burst    int
}

func NewClientRateLimiter(rps float64, burst int) *ClientRateLimiter {
	return &ClientRateLimiter{
		limiters: cache.New(10*time.Minute, 15*time.Minute),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (c *ClientRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := clientAddr(r)
		if !c.limiterFor(clientIP).Allow() {
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"clientIP", clientIP)
			utils.SendJSONError(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (c *ClientRateLimiter) limiterFor(clientIP string) *rate.Limiter {
	if v, ok := c.limiters.Get(clientIP); ok {
		return v.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(c.rps, c.burst)
	if err := c.limiters.Add(clientIP, limiter, cache.DefaultExpiration); err != nil {
		// Lost a creation race; use the winner's limiter.
		if v, ok := c.limiters.Get(clientIP); ok {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
