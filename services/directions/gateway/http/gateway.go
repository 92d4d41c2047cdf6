package gateway_http

import (
	"context"
	"time"

	httpclient "github.com/brickroad/brickroad/internal/pkg/http"
	"github.com/brickroad/brickroad/internal/pkg/models"
)

// HTTPGateway implements the HTTP client operations for the directions service
type HTTPGateway struct {
	geocoder *NominatimClient
	router   *OSRMClient
}

// NewHTTPGateway creates a new HTTP gateway for the directions service
func NewHTTPGateway(configs *models.Config) *HTTPGateway {
	timeout := time.Duration(configs.HTTP.Timeout) * time.Second

	return &HTTPGateway{
		geocoder: NewNominatimClient(httpclient.Config{
			BaseURL:   configs.Geocoder.BaseURL,
			UserAgent: configs.HTTP.UserAgent,
			Timeout:   timeout,
		}),
		router: NewOSRMClient(httpclient.Config{
			BaseURL:   configs.Router.BaseURL,
			UserAgent: configs.HTTP.UserAgent,
			Timeout:   timeout,
		}, configs.Router.Profile),
	}
}

// Geocode resolves a location through the geocoding provider
func (g *HTTPGateway) Geocode(ctx context.Context, query string) (*models.Coordinate, error) {
	return g.geocoder.Geocode(ctx, query)
}

// Route fetches route steps through the routing provider
func (g *HTTPGateway) Route(ctx context.Context, from, to models.Coordinate) ([]models.RouteStep, error) {
	return g.router.Route(ctx, from, to)
}
