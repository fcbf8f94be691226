package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
)

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		count         int64
		err           error
		wantCode      int
		wantRemaining string
	}{
		{name: "disabled", enable: false, wantCode: http.StatusOK},
		{name: "under the limit", enable: true, count: 2, wantCode: http.StatusOK, wantRemaining: "1"},
		{name: "at the limit", enable: true, count: 3, wantCode: http.StatusOK, wantRemaining: "0"},
		{name: "over the limit", enable: true, count: 4, wantCode: http.StatusTooManyRequests, wantRemaining: "0"},
		{name: "cache outage lets traffic through", enable: true, err: errors.New("dial tcp"), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = tt.enable
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			if tt.enable {
				mockCache.EXPECT().Increment(gomock.Any(), "rate_limit:10.0.0.7:front-desk", 60).Return(tt.count, tt.err)
			}

			limiter := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache).RateLimit()
			handler := limiter(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.7, 172.16.0.1")
			req.Header.Set(constant.RequestHeaderUserAgent, "front-desk")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}
