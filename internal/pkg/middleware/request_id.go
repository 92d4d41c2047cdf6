package middleware

import (
	"github.com/brickroad/brickroad/internal/pkg/requestcontext"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware reuses the caller's X-Request-ID or generates one, and
// exposes it on the response, the echo context and the request context
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = requestcontext.NewRequestID()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set("request_id", requestID)
			c.SetRequest(c.Request().WithContext(requestcontext.WithRequestID(c.Request().Context(), requestID)))

			return next(c)
		}
	}
}
