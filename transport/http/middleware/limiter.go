package middleware

import (
	"errors"
	"net"
	"net/http"
	"salon/shared"
	"salon/shared/cache"
	"salon/shared/constant"
	"salon/transport/http/response"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"

	LimitBucketDefault = "default"
	LimitBucketBooking = "booking"
)

// RateLimit counts requests per client and bucket in a fixed window kept in redis.
// Booking submissions get their own, tighter bucket. A failing redis lets the request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return a.limit(LimitBucketDefault, a.config.App.RateLimiter.MaxRequests)
}

func (a *appMiddleware) BookingRateLimit() func(http.Handler) http.Handler {
	maxReqs := a.config.App.RateLimiter.BookingMaxRequests
	if maxReqs <= 0 {
		maxReqs = a.config.App.RateLimiter.MaxRequests
	}

	return a.limit(LimitBucketBooking, maxReqs)
}

func (a *appMiddleware) limit(bucket string, maxReqs int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable || maxReqs <= 0 {
				next.ServeHTTP(w, r)

				return
			}

			windowSecs := a.config.App.RateLimiter.WindowSeconds
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, bucket, a.getClientIP(r))

			var count int
			err := a.cache.Get(r.Context(), cacheKey, &count)

			switch {
			case err == nil:
				count++
			case errors.Is(err, cache.Nil):
				count = 1
			default:
				log.Warn().Err(err).Str("bucket", bucket).Msg("rate limiter unavailable, letting request through")
				next.ServeHTTP(w, r)

				return
			}

			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			if err = a.cache.Save(r.Context(), cacheKey, count, windowSecs); err != nil {
				log.Warn().Err(err).Str("bucket", bucket).Msg("rate limiter could not store the counter")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

// getClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the peer address without port.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
