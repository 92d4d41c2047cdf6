package utils

import (
	"github.com/brickroad/brickroad/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// CoordinatePrecision is the geohash length used for cache keys (sub-metre cells)
const CoordinatePrecision uint = 12

// EncodeCoordinate converts a coordinate to a geohash string
func EncodeCoordinate(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// DecodeGeohash converts a geohash string back to the centre of its cell
func DecodeGeohash(hash string) models.Coordinate {
	lat, lng := geohash.Decode(hash)
	return models.Coordinate{Latitude: lat, Longitude: lng}
}
