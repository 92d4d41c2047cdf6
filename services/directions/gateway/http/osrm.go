package gateway_http

import (
	"context"
	"fmt"
	"net/url"

	httpclient "github.com/brickroad/brickroad/internal/pkg/http"
	"github.com/brickroad/brickroad/internal/pkg/models"
)

// DefaultProfile is the OSRM routing profile used when none is configured
const DefaultProfile = "driving"

type osrmManeuver struct {
	Type     *string `json:"type"`
	Modifier *string `json:"modifier"`
}

type osrmStep struct {
	Name     *string       `json:"name"`
	Maneuver *osrmManeuver `json:"maneuver"`
}

type osrmLeg struct {
	Steps []osrmStep `json:"steps"`
}

type osrmRoute struct {
	Legs []osrmLeg `json:"legs"`
}

// osrmResponse mirrors the relevant parts of the OSRM route service payload
type osrmResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Routes  []osrmRoute `json:"routes"`
}

// OSRMClient is an HTTP client for the OSRM route service
type OSRMClient struct {
	client  *httpclient.Client
	profile string
}

// NewOSRMClient creates a new OSRM client
func NewOSRMClient(config httpclient.Config, profile string) *OSRMClient {
	if profile == "" {
		profile = DefaultProfile
	}
	return &OSRMClient{
		client:  httpclient.NewClient(config),
		profile: profile,
	}
}

// Route requests a route with step maneuvers and no overview geometry and
// returns the steps of its first leg in provider order
func (c *OSRMClient) Route(ctx context.Context, from, to models.Coordinate) ([]models.RouteStep, error) {
	endpoint := fmt.Sprintf("/route/v1/%s/%s;%s", c.profile, from.LonLat(), to.LonLat())

	params := url.Values{}
	params.Set("overview", "false")
	params.Set("steps", "true")

	var resp osrmResponse
	if err := c.client.GetJSON(ctx, endpoint, params, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch route: %w", err)
	}

	if resp.Code != "" && resp.Code != "Ok" {
		if resp.Message != "" {
			return nil, fmt.Errorf("routing failed with code %s: %s", resp.Code, resp.Message)
		}
		return nil, fmt.Errorf("routing failed with code %s", resp.Code)
	}
	if len(resp.Routes) == 0 {
		return nil, fmt.Errorf("routing response contains no routes")
	}
	if len(resp.Routes[0].Legs) == 0 {
		return nil, fmt.Errorf("route contains no legs")
	}

	raw := resp.Routes[0].Legs[0].Steps
	steps := make([]models.RouteStep, 0, len(raw))
	for i, s := range raw {
		if s.Maneuver == nil {
			return nil, fmt.Errorf("step %d is missing maneuver", i)
		}
		if s.Maneuver.Type == nil {
			return nil, fmt.Errorf("step %d is missing maneuver type", i)
		}
		if s.Name == nil {
			return nil, fmt.Errorf("step %d is missing name", i)
		}
		steps = append(steps, models.RouteStep{
			Type:     *s.Maneuver.Type,
			Modifier: s.Maneuver.Modifier,
			Name:     *s.Name,
		})
	}

	return steps, nil
}
