package gateway

import (
	"context"

	"github.com/brickroad/brickroad/internal/pkg/models"
	nrpkg "github.com/brickroad/brickroad/internal/pkg/newrelic"
)

// Geocode resolves a free-text location to a coordinate
func (g *DirectionsGW) Geocode(ctx context.Context, query string) (*models.Coordinate, error) {
	var coord *models.Coordinate
	err := nrpkg.WithSegment(ctx, "Gateway.Geocode", func() error {
		var err error
		coord, err = g.httpGateway.Geocode(ctx, query)
		return err
	})
	return coord, err
}

// Route fetches the maneuvers between two coordinates
func (g *DirectionsGW) Route(ctx context.Context, from, to models.Coordinate) ([]models.RouteStep, error) {
	var steps []models.RouteStep
	err := nrpkg.WithSegment(ctx, "Gateway.Route", func() error {
		var err error
		steps, err = g.httpGateway.Route(ctx, from, to)
		return err
	})
	return steps, err
}
