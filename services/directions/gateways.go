//go:generate mockgen -source=gateways.go -destination=mocks/mock_gateway.go -package=mocks

package directions

import (
	"context"

	"github.com/brickroad/brickroad/internal/pkg/models"
)

// DirectionsGW defines the interface for the external geocoding and routing providers
type DirectionsGW interface {
	// Geocode resolves a free-text location; it returns nil, nil when the provider finds nothing
	Geocode(ctx context.Context, query string) (*models.Coordinate, error)
	// Route returns the maneuvers of the first leg of the first route between two coordinates
	Route(ctx context.Context, from, to models.Coordinate) ([]models.RouteStep, error)
}
