// File: /services/route_service.go
package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripplanner-api/models"
	"tripplanner-api/osrm"
	"tripplanner-api/repositories"
)

// RouteProvider computes a route through an ordered coordinate list.
// Satisfied by *osrm.Client; tests substitute a stub.
type RouteProvider interface {
	ComputeRoute(ctx context.Context, coords []osrm.Coordinate, travelMode string) (*osrm.RouteResult, error)
}

type RouteService struct {
	trips    *repositories.TripRepository
	routes   *repositories.RouteRepository
	provider RouteProvider
}

func NewRouteService(trips *repositories.TripRepository, routes *repositories.RouteRepository, provider RouteProvider) *RouteService {
	return &RouteService{
		trips:    trips,
		routes:   routes,
		provider: provider,
	}
}

// GetByTripID returns the stored route for a trip, or ErrRouteNotFound if
// none has been calculated yet.
func (s *RouteService) GetByTripID(tripID string) (*models.Route, error) {
	route, err := s.routes.FindByTripID(tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}
	return route, nil
}

// Calculate recomputes the route for a trip and stores it, replacing any
// previously stored route for the same trip wholesale. On any failure
// nothing is written. Provider errors are passed through unchanged so
// callers can distinguish an outage from unroutable waypoints.
func (s *RouteService) Calculate(ctx context.Context, tripID string) (*models.Route, error) {
	trip, err := s.trips.FindByIDWithWaypoints(tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	// order_index is the authoritative visiting sequence; never trust
	// whatever order rows came back in.
	waypoints := make([]models.Waypoint, len(trip.Waypoints))
	copy(waypoints, trip.Waypoints)
	sort.SliceStable(waypoints, func(i, j int) bool {
		return waypoints[i].OrderIndex < waypoints[j].OrderIndex
	})

	if len(waypoints) < 2 {
		return nil, ErrInsufficientWaypoints
	}

	coords := make([]osrm.Coordinate, 0, len(waypoints))
	waypointIDs := make(models.StringSlice, 0, len(waypoints))
	for _, wp := range waypoints {
		coords = append(coords, osrm.Coordinate{Latitude: wp.Latitude, Longitude: wp.Longitude})
		waypointIDs = append(waypointIDs, wp.ID)
	}

	result, err := s.provider.ComputeRoute(ctx, coords, trip.TravelMode)
	if err != nil {
		return nil, err
	}

	distanceMeters := int(math.Round(result.DistanceMeters))
	durationMinutes := int(math.Round(result.DurationSeconds / 60))

	verdict := EvaluateFeasibility(trip.StartDate, trip.EndDate, durationMinutes, waypoints)

	route := &models.Route{
		ID:                   uuid.New().String(),
		TripID:               trip.ID,
		WaypointOrder:        waypointIDs,
		TotalDistanceMeters:  distanceMeters,
		TotalDurationMinutes: durationMinutes,
		RouteGeometry:        result.Geometry,
		TravelMode:           trip.TravelMode,
		IsFeasible:           verdict.IsFeasible,
		FeasibilityMessage:   verdict.Message,
		CalculatedAt:         time.Now().UTC(),
	}

	if err := s.routes.Upsert(route); err != nil {
		return nil, err
	}

	// When the upsert hit an existing row that row keeps its id, so read
	// back the surviving record instead of returning our candidate.
	return s.routes.FindByTripID(trip.ID)
}
