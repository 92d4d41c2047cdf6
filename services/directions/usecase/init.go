package usecase

import (
	"github.com/brickroad/brickroad/services/directions"
)

// DirectionsUC implements the directions use case interface
type DirectionsUC struct {
	directionsGW   directions.DirectionsGW
	directionsRepo directions.DirectionsRepo
}

// NewDirectionsUC creates a new directions use case. directionsRepo may be
// nil, in which case every lookup goes to the providers.
func NewDirectionsUC(
	directionsGW directions.DirectionsGW,
	directionsRepo directions.DirectionsRepo,
) *DirectionsUC {
	return &DirectionsUC{
		directionsGW:   directionsGW,
		directionsRepo: directionsRepo,
	}
}
