package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/brickroad/brickroad/internal/pkg/constants"
	"github.com/brickroad/brickroad/internal/pkg/database"
	"github.com/brickroad/brickroad/internal/pkg/models"
	"github.com/brickroad/brickroad/internal/utils"
	"github.com/brickroad/brickroad/services/directions"
	"github.com/go-redis/redis/v8"
)

// DefaultTTL is used when the configured cache TTL is not positive
const DefaultTTL = time.Hour

type directionsRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewDirectionsRepository creates a Redis-backed cache for provider responses
func NewDirectionsRepository(redisClient *database.RedisClient, ttl time.Duration) directions.DirectionsRepo {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &directionsRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func geocodeKey(query string) string {
	return fmt.Sprintf(constants.KeyGeocode, utils.NormalizeQuery(query))
}

func routeKey(from, to models.Coordinate) string {
	return fmt.Sprintf(constants.KeyRoute,
		utils.EncodeCoordinate(from, utils.CoordinatePrecision),
		utils.EncodeCoordinate(to, utils.CoordinatePrecision))
}

// GetCoordinate returns the cached geocoding result for query
func (r *directionsRepo) GetCoordinate(ctx context.Context, query string) (*models.Coordinate, error) {
	var coord models.Coordinate
	found, err := r.getJSON(ctx, geocodeKey(query), &coord)
	if err != nil || !found {
		return nil, err
	}
	return &coord, nil
}

// SetCoordinate caches a geocoding hit for query
func (r *directionsRepo) SetCoordinate(ctx context.Context, query string, coord models.Coordinate) error {
	return r.setJSON(ctx, geocodeKey(query), coord)
}

// GetSteps returns the cached route steps between two coordinates
func (r *directionsRepo) GetSteps(ctx context.Context, from, to models.Coordinate) ([]models.RouteStep, error) {
	var steps []models.RouteStep
	found, err := r.getJSON(ctx, routeKey(from, to), &steps)
	if err != nil || !found {
		return nil, err
	}
	if steps == nil {
		steps = []models.RouteStep{}
	}
	return steps, nil
}

// SetSteps caches the route steps between two coordinates
func (r *directionsRepo) SetSteps(ctx context.Context, from, to models.Coordinate, steps []models.RouteStep) error {
	return r.setJSON(ctx, routeKey(from, to), steps)
}

func (r *directionsRepo) getJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.redisClient.GetClient().Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s from cache: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached %s: %w", key, err)
	}
	return true, nil
}

func (r *directionsRepo) setJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := r.redisClient.GetClient().Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s to cache: %w", key, err)
	}
	return nil
}
