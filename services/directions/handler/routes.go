package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all HTTP routes. The optional middlewares guard
// /directions only, which is the route that reaches the upstream providers.
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo, directionsMiddleware ...echo.MiddlewareFunc) {
	e.GET("/", h.directionsHTTP.Form)
	e.GET("/directions", h.directionsHTTP.GetDirections, directionsMiddleware...)
}
