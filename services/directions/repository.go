//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

package directions

import (
	"context"

	"github.com/brickroad/brickroad/internal/pkg/models"
)

// DirectionsRepo defines the interface for the optional provider response cache.
// Lookups return nil, nil on a cache miss.
type DirectionsRepo interface {
	// Geocoding cache
	GetCoordinate(ctx context.Context, query string) (*models.Coordinate, error)
	SetCoordinate(ctx context.Context, query string, coord models.Coordinate) error

	// Route cache
	GetSteps(ctx context.Context, from, to models.Coordinate) ([]models.RouteStep, error)
	SetSteps(ctx context.Context, from, to models.Coordinate, steps []models.RouteStep) error
}
