package usecase

import (
	"context"

	"github.com/brickroad/brickroad/internal/pkg/logger"
	"github.com/brickroad/brickroad/internal/pkg/models"
	"github.com/brickroad/brickroad/internal/utils"
	"github.com/brickroad/brickroad/services/directions"
)

// GetDirections geocodes both locations, fetches a route between them and
// returns its steps. Both locations are geocoded before misses are reported.
func (uc *DirectionsUC) GetDirections(ctx context.Context, from, to string) (*models.Directions, error) {
	if utils.IsBlank(from) || utils.IsBlank(to) {
		return nil, directions.ErrMissingLocation
	}

	fromCoord, err := uc.geocode(ctx, from)
	if err != nil {
		return nil, err
	}
	toCoord, err := uc.geocode(ctx, to)
	if err != nil {
		return nil, err
	}

	if fromCoord == nil || toCoord == nil {
		logger.InfoCtx(ctx, "Location could not be geocoded",
			logger.String("from", from),
			logger.String("to", to),
			logger.Bool("from_found", fromCoord != nil),
			logger.Bool("to_found", toCoord != nil))
		return nil, directions.ErrLocationNotFound
	}

	steps, err := uc.route(ctx, *fromCoord, *toCoord)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Directions resolved",
		logger.String("from", from),
		logger.String("to", to),
		logger.Int("steps", len(steps)))

	return &models.Directions{
		From:      from,
		To:        to,
		FromCoord: *fromCoord,
		ToCoord:   *toCoord,
		Steps:     steps,
	}, nil
}

func (uc *DirectionsUC) geocode(ctx context.Context, query string) (*models.Coordinate, error) {
	if uc.directionsRepo != nil {
		cached, err := uc.directionsRepo.GetCoordinate(ctx, query)
		if err != nil {
			logger.WarnCtx(ctx, "Geocode cache read failed",
				logger.String("query", utils.Truncate(query, 100)),
				logger.Err(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	coord, err := uc.directionsGW.Geocode(ctx, query)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to geocode location",
			logger.String("query", utils.Truncate(query, 100)),
			logger.Err(err))
		return nil, err
	}

	if coord != nil && uc.directionsRepo != nil {
		if err := uc.directionsRepo.SetCoordinate(ctx, query, *coord); err != nil {
			logger.WarnCtx(ctx, "Geocode cache write failed", logger.Err(err))
		}
	}

	return coord, nil
}

func (uc *DirectionsUC) route(ctx context.Context, from, to models.Coordinate) ([]models.RouteStep, error) {
	if uc.directionsRepo != nil {
		cached, err := uc.directionsRepo.GetSteps(ctx, from, to)
		if err != nil {
			logger.WarnCtx(ctx, "Route cache read failed", logger.Err(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	steps, err := uc.directionsGW.Route(ctx, from, to)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to fetch route",
			logger.String("from", from.LonLat()),
			logger.String("to", to.LonLat()),
			logger.Err(err))
		return nil, err
	}

	if uc.directionsRepo != nil {
		if err := uc.directionsRepo.SetSteps(ctx, from, to, steps); err != nil {
			logger.WarnCtx(ctx, "Route cache write failed", logger.Err(err))
		}
	}

	return steps, nil
}
