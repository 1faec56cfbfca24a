// File: /osrm/client.go
package osrm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tripplanner-api/models"
)

var (
	// ErrUpstreamUnavailable covers transport-level failures: network
	// errors, non-2xx responses and malformed payloads. Retryable.
	ErrUpstreamUnavailable = errors.New("routing service unavailable")

	// ErrNoRouteFound means the provider answered but could not connect
	// the given coordinates. Not retryable without changing the inputs.
	ErrNoRouteFound = errors.New("no route found between waypoints")
)

// Coordinate is a waypoint position as decimal strings, passed through to
// the provider verbatim so precision is preserved.
type Coordinate struct {
	Latitude  string
	Longitude string
}

// RouteResult is the provider's answer for one route request.
type RouteResult struct {
	DistanceMeters  float64
	DurationSeconds float64
	Geometry        models.LineString
}

// Client calls an OSRM-compatible routing service. It applies the timeout
// configured at construction and performs no retries; retry policy belongs
// to the caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// profileFor maps a trip travel mode to an OSRM routing profile. Every
// non-car mode falls back to the walking profile, including bike and
// public_transport, which the public OSRM server has no profiles for.
func profileFor(travelMode string) string {
	if travelMode == models.TravelModeCar {
		return "driving"
	}
	return "foot"
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64           `json:"distance"`
		Duration float64           `json:"duration"`
		Geometry models.LineString `json:"geometry"`
	} `json:"routes"`
}

// ComputeRoute requests a route visiting the given coordinates in order.
// The caller guarantees ordering and must pass at least two coordinates.
func (c *Client) ComputeRoute(ctx context.Context, coords []Coordinate, travelMode string) (*RouteResult, error) {
	if len(coords) < 2 {
		return nil, fmt.Errorf("compute route: need at least 2 coordinates, got %d", len(coords))
	}

	pairs := make([]string, 0, len(coords))
	for _, coord := range coords {
		pairs = append(pairs, coord.Longitude+","+coord.Latitude)
	}

	endpoint := fmt.Sprintf("%s/route/v1/%s/%s?overview=full&geometries=geojson&steps=false",
		c.baseURL, profileFor(travelMode), strings.Join(pairs, ";"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("compute route: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var rr routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstreamUnavailable, err)
	}

	if rr.Code != "Ok" || len(rr.Routes) == 0 {
		code := rr.Code
		if code == "" {
			code = "Unknown"
		}
		return nil, fmt.Errorf("%w (provider code %s)", ErrNoRouteFound, code)
	}

	route := rr.Routes[0]
	return &RouteResult{
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
		Geometry:        route.Geometry,
	}, nil
}
