package handler

import (
	"github.com/brickroad/brickroad/internal/pkg/models"
	"github.com/brickroad/brickroad/services/directions"
	httpHandler "github.com/brickroad/brickroad/services/directions/handler/http"
)

// HTTPHandler combines all handlers for the directions service
type HTTPHandler struct {
	directionsHTTP *httpHandler.DirectionsHandler
	cfg            *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(
	directionsUC directions.DirectionsUC,
	cfg *models.Config,
) *HTTPHandler {
	return &HTTPHandler{
		directionsHTTP: httpHandler.NewDirectionsHandler(directionsUC),
		cfg:            cfg,
	}
}
