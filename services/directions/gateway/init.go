package gateway

import (
	"github.com/brickroad/brickroad/internal/pkg/models"
	"github.com/brickroad/brickroad/services/directions"
	gateway_http "github.com/brickroad/brickroad/services/directions/gateway/http"
)

// DirectionsGW handles directions gateway operations
type DirectionsGW struct {
	httpGateway *gateway_http.HTTPGateway
}

// NewDirectionsGW creates a new gateway instance backed by the HTTP providers
func NewDirectionsGW(configs *models.Config) directions.DirectionsGW {
	return &DirectionsGW{
		httpGateway: gateway_http.NewHTTPGateway(configs),
	}
}
