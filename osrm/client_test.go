// File: /osrm/client_test.go
package osrm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner-api/models"
)

func testCoords() []Coordinate {
	return []Coordinate{
		{Latitude: "47.497912", Longitude: "19.040235"},
		{Latitude: "47.500000", Longitude: "19.050000"},
	}
}

func TestComputeRoute_Success(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": "Ok",
			"routes": [{
				"distance": 1532.7,
				"duration": 421.4,
				"geometry": {"type": "LineString", "coordinates": [[19.040235, 47.497912], [19.05, 47.5]]}
			}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result, err := client.ComputeRoute(context.Background(), testCoords(), models.TravelModeCar)
	require.NoError(t, err)

	assert.Equal(t, "/route/v1/driving/19.040235,47.497912;19.050000,47.500000", gotPath)
	assert.Equal(t, "overview=full&geometries=geojson&steps=false", gotQuery)
	assert.Equal(t, 1532.7, result.DistanceMeters)
	assert.Equal(t, 421.4, result.DurationSeconds)
	assert.Equal(t, "LineString", result.Geometry.Type)
	assert.Len(t, result.Geometry.Coordinates, 2)
	assert.Equal(t, []float64{19.040235, 47.497912}, result.Geometry.Coordinates[0])
}

func TestComputeRoute_ProfileMapping(t *testing.T) {
	tests := []struct {
		travelMode string
		profile    string
	}{
		{models.TravelModeCar, "driving"},
		{models.TravelModeFoot, "foot"},
		{models.TravelModeBike, "foot"},
		{models.TravelModePublicTransport, "foot"},
	}

	for _, tt := range tests {
		t.Run(tt.travelMode, func(t *testing.T) {
			assert.Equal(t, tt.profile, profileFor(tt.travelMode))
		})
	}
}

func TestComputeRoute_NoRouteFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.ComputeRoute(context.Background(), testCoords(), models.TravelModeFoot)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRouteFound)
	assert.Contains(t, err.Error(), "NoRoute")
}

func TestComputeRoute_OkCodeButEmptyRoutes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": "Ok", "routes": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.ComputeRoute(context.Background(), testCoords(), models.TravelModeCar)
	assert.ErrorIs(t, err, ErrNoRouteFound)
}

func TestComputeRoute_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.ComputeRoute(context.Background(), testCoords(), models.TravelModeCar)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestComputeRoute_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.ComputeRoute(context.Background(), testCoords(), models.TravelModeCar)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestComputeRoute_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, 2*time.Second)
	_, err := client.ComputeRoute(context.Background(), testCoords(), models.TravelModeCar)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestComputeRoute_TooFewCoordinates(t *testing.T) {
	client := NewClient("http://localhost:5000", time.Second)

	_, err := client.ComputeRoute(context.Background(), nil, models.TravelModeCar)
	assert.Error(t, err)

	_, err = client.ComputeRoute(context.Background(), testCoords()[:1], models.TravelModeCar)
	assert.Error(t, err)
}
