package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brickroad/brickroad/internal/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, buf *bytes.Buffer) *logger.ZapLogger {
	t.Helper()
	zl, err := logger.NewZapLogger(logger.ZapConfig{Level: "debug", Console: buf}, nil)
	require.NoError(t, err)
	return zl
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		panicValue   interface{}
		expectInLogs []string
	}{
		{
			name:       "string panic",
			panicValue: "test panic message",
			expectInLogs: []string{
				"test panic message",
				"stack_trace",
				"Panic recovered during request processing",
			},
		},
		{
			name:       "error panic",
			panicValue: fmt.Errorf("test error panic"),
			expectInLogs: []string{
				"test error panic",
				"*errors.errorString",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuffer bytes.Buffer
			e := echo.New()
			e.Use(RequestIDMiddleware())
			e.Use(PanicRecoveryWithZapMiddleware(newTestLogger(t, &logBuffer)))
			e.GET("/directions", func(c echo.Context) error {
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/directions", nil)
			req.Header.Set(echo.HeaderXRequestID, "req-panic")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Internal Server Error", body["error"])
			assert.Equal(t, "req-panic", body["request_id"])

			logs := logBuffer.String()
			for _, expected := range tt.expectInLogs {
				assert.Contains(t, logs, expected)
			}
		})
	}
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(PanicRecoveryConfig{})
	})
}

func TestPanicRecoveryMiddleware_NoPanic(t *testing.T) {
	var logBuffer bytes.Buffer
	e := echo.New()
	e.Use(PanicRecoveryWithZapMiddleware(newTestLogger(t, &logBuffer)))
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logBuffer.String())
}

func TestSendPanicResponse_NoRequestID(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	sendPanicResponse(c, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	_, hasID := body["request_id"]
	assert.False(t, hasID)
}
