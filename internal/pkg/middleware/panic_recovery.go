package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/brickroad/brickroad/internal/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

// PanicRecoveryConfig holds configuration for panic recovery middleware
type PanicRecoveryConfig struct {
	Logger *logger.ZapLogger
}

// PanicRecoveryMiddleware recovers from panics, logs them with a stack trace,
// reports them to New Relic and answers 500
func PanicRecoveryMiddleware(config PanicRecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, config)
				}
			}()

			return next(c)
		}
	}
}

// PanicRecoveryWithZapMiddleware creates panic recovery middleware with Zap logger
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return PanicRecoveryMiddleware(PanicRecoveryConfig{Logger: zapLogger})
}

func handlePanic(c echo.Context, r interface{}, config PanicRecoveryConfig) {
	stackTrace := string(debug.Stack())
	requestID := getRequestID(c)
	req := c.Request()

	txn := newrelic.FromContext(req.Context())
	if txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":  fmt.Sprintf("%T", r),
				"http.method": req.Method,
				"http.path":   req.URL.Path,
				"request_id":  requestID,
			},
		})
	}

	config.Logger.WithNewRelicContext(txn).Error("Panic recovered during request processing",
		zap.Any("panic_value", r),
		zap.String("panic_type", fmt.Sprintf("%T", r)),
		zap.String("stack_trace", stackTrace),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.String("client_ip", c.RealIP()),
		zap.String("user_agent", req.UserAgent()),
		zap.String("request_id", requestID),
	)

	sendPanicResponse(c, requestID)
}

func getRequestID(c echo.Context) string {
	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

func sendPanicResponse(c echo.Context, requestID string) {
	if c.Response().Committed {
		return
	}

	response := map[string]interface{}{
		"error":   "Internal Server Error",
		"message": "An unexpected error occurred while processing your request",
	}
	if requestID != "" {
		response["request_id"] = requestID
	}

	if err := c.JSON(http.StatusInternalServerError, response); err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
