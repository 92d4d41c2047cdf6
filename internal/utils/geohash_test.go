package utils

import (
	"testing"

	"github.com/brickroad/brickroad/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestEncodeCoordinate(t *testing.T) {
	paris := models.Coordinate{Latitude: 48.8566, Longitude: 2.3522}

	hash := EncodeCoordinate(paris, CoordinatePrecision)

	assert.Len(t, hash, int(CoordinatePrecision))
	assert.Equal(t, "u09tv", hash[:5])
	assert.Equal(t, hash[:7], EncodeCoordinate(paris, 7))
}

func TestEncodeCoordinate_DistinguishesNearbyPoints(t *testing.T) {
	a := models.Coordinate{Latitude: 52.520008, Longitude: 13.404954}
	b := models.Coordinate{Latitude: 52.520108, Longitude: 13.404954}

	assert.NotEqual(t, EncodeCoordinate(a, CoordinatePrecision), EncodeCoordinate(b, CoordinatePrecision))
}

func TestDecodeGeohash_RoundTrip(t *testing.T) {
	berlin := models.Coordinate{Latitude: 52.520008, Longitude: 13.404954}

	decoded := DecodeGeohash(EncodeCoordinate(berlin, CoordinatePrecision))

	assert.InDelta(t, berlin.Latitude, decoded.Latitude, 1e-6)
	assert.InDelta(t, berlin.Longitude, decoded.Longitude, 1e-6)
}
