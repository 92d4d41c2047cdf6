package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLimitedEcho(client *redis.Client, limit int) *echo.Echo {
	e := echo.New()
	e.GET("/directions", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, IPRateLimiter(limit, time.Minute, client))
	return e
}

func TestIPRateLimiter_BlocksAfterLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	e := newLimitedEcho(client, 2)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/directions", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/directions", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Rate limit exceeded")
}

func TestIPRateLimiter_WindowExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	e := newLimitedEcho(client, 1)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/directions", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	mr.FastForward(2 * time.Minute)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/directions", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIPRateLimiter_SeparateClients(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	e := newLimitedEcho(client, 1)

	first := httptest.NewRequest(http.MethodGet, "/directions", nil)
	first.RemoteAddr = "10.0.0.1:4000"
	second := httptest.NewRequest(http.MethodGet, "/directions", nil)
	second.RemoteAddr = "10.0.0.2:4000"

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, first)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIPRateLimiter_RedisDownFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	e := newLimitedEcho(client, 1)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/directions", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
