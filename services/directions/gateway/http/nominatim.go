package gateway_http

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	httpclient "github.com/brickroad/brickroad/internal/pkg/http"
	"github.com/brickroad/brickroad/internal/pkg/models"
)

// nominatimResult mirrors the relevant parts of the Nominatim search payload
type nominatimResult struct {
	DisplayName string  `json:"display_name"`
	Lat         *string `json:"lat"`
	Lon         *string `json:"lon"`
}

// NominatimClient is an HTTP client for the Nominatim geocoding API
type NominatimClient struct {
	client *httpclient.Client
}

// NewNominatimClient creates a new Nominatim client
func NewNominatimClient(config httpclient.Config) *NominatimClient {
	return &NominatimClient{
		client: httpclient.NewClient(config),
	}
}

// Geocode resolves a free-text query to the coordinate of the best match.
// It returns nil, nil when the provider has no result.
func (c *NominatimClient) Geocode(ctx context.Context, query string) (*models.Coordinate, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	var results []nominatimResult
	if err := c.client.GetJSON(ctx, "/search", params, &results); err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	lat, err := parseDegrees("lat", results[0].Lat)
	if err != nil {
		return nil, err
	}
	lon, err := parseDegrees("lon", results[0].Lon)
	if err != nil {
		return nil, err
	}

	return &models.Coordinate{Latitude: lat, Longitude: lon}, nil
}

func parseDegrees(field string, value *string) (float64, error) {
	if value == nil {
		return 0, fmt.Errorf("geocoding result is missing %q", field)
	}
	f, err := strconv.ParseFloat(*value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q in geocoding result: %w", field, *value, err)
	}
	return f, nil
}
