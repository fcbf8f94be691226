package middleware

import (
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/transport/http/response"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// RateLimit counts requests per client in a fixed redis window. A cache
// outage lets traffic through rather than failing every request.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			cacheKey := shared.BuildCacheKey(constant.CacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

			count, err := a.cache.Increment(r.Context(), cacheKey, windowSecs)
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-int(count))))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			if int(count) > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

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

func (a *appMiddleware) getClientIP(r *http.Request) string {
	// X-Forwarded-For may carry a proxy chain; the first entry is the client
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
