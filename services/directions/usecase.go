//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

package directions

import (
	"context"

	"github.com/brickroad/brickroad/internal/pkg/models"
)

// DirectionsUC defines the interface for directions business logic
type DirectionsUC interface {
	GetDirections(ctx context.Context, from, to string) (*models.Directions, error)
}
