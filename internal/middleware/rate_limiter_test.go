package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedRequest(t *testing.T, limiter echo.MiddlewareFunc, ip string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := limiter(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	limiter := RateLimiterWithConfig(10, 5)

	for i := 0; i < 5; i++ {
		rec := rateLimitedRequest(t, limiter, "10.0.0.1")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}
}

func TestRateLimiter_BlocksBeyondBurst(t *testing.T) {
	limiter := RateLimiterWithConfig(1, 2)

	rateLimitedRequest(t, limiter, "10.0.0.2")
	rateLimitedRequest(t, limiter, "10.0.0.2")
	rec := rateLimitedRequest(t, limiter, "10.0.0.2")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many requests")
}

func TestRateLimiter_TracksClientsIndependently(t *testing.T) {
	limiter := RateLimiterWithConfig(1, 1)

	first := rateLimitedRequest(t, limiter, "10.0.0.3")
	assert.Equal(t, http.StatusOK, first.Code)

	blocked := rateLimitedRequest(t, limiter, "10.0.0.3")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)

	other := rateLimitedRequest(t, limiter, "10.0.0.4")
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestGetIP_HeaderPrecedence(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{"X-Forwarded-For wins", map[string]string{"X-Forwarded-For": "1.2.3.4", "X-Real-IP": "5.6.7.8"}, "1.2.3.4"},
		{"X-Real-IP fallback", map[string]string{"X-Real-IP": "5.6.7.8"}, "5.6.7.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.expected, getIP(c))
		})
	}
}

func TestGetVisitor_ReusesLimiterPerIP(t *testing.T) {
	ip := fmt.Sprintf("10.1.0.%d", len(visitors)+1)

	first := getVisitor(ip)
	second := getVisitor(ip)

	assert.Same(t, first, second)
}
