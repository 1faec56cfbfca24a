// File: /services/route_service_test.go
package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tripplanner-api/models"
	"tripplanner-api/osrm"
	"tripplanner-api/repositories"
)

// stubProvider returns a canned result or error without any network I/O.
type stubProvider struct {
	result *osrm.RouteResult
	err    error
	calls  int
	coords []osrm.Coordinate
}

func (p *stubProvider) ComputeRoute(ctx context.Context, coords []osrm.Coordinate, travelMode string) (*osrm.RouteResult, error) {
	p.calls++
	p.coords = coords
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database keeps each test isolated while letting
	// gorm's connection pool see the same data.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Member{},
		&models.MemberPreference{},
		&models.Trip{},
		&models.Waypoint{},
		&models.Route{},
		&models.TripClone{},
		&models.TripReview{},
		&models.TripPhoto{},
	)
	require.NoError(t, err)

	return db
}

func seedTrip(t *testing.T, db *gorm.DB, waypointCount int) *models.Trip {
	t.Helper()

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)

	trip := &models.Trip{
		ID:         uuid.New().String(),
		Title:      "Budapest weekend",
		City:       "Budapest",
		Country:    "Hungary",
		StartDate:  &start,
		EndDate:    &end,
		TravelMode: models.TravelModeCar,
		Status:     models.TripStatusPlanned,
		Visibility: models.VisibilityPrivate,
	}
	require.NoError(t, db.Create(trip).Error)

	for i := 0; i < waypointCount; i++ {
		wp := models.Waypoint{
			ID:              uuid.New().String(),
			TripID:          trip.ID,
			Name:            "Stop",
			Latitude:        "47.497912",
			Longitude:       "19.040235",
			Category:        models.WaypointCategoryCustom,
			OrderIndex:      i,
			DurationMinutes: 30,
		}
		require.NoError(t, db.Create(&wp).Error)
	}

	return trip
}

func defaultStubResult() *osrm.RouteResult {
	return &osrm.RouteResult{
		DistanceMeters:  1532.6,
		DurationSeconds: 421.4,
		Geometry: models.LineString{
			Type:        "LineString",
			Coordinates: [][]float64{{19.040235, 47.497912}, {19.05, 47.5}},
		},
	}
}

func newRouteService(db *gorm.DB, provider RouteProvider) *RouteService {
	return NewRouteService(
		repositories.NewTripRepository(db),
		repositories.NewRouteRepository(db),
		provider,
	)
}

func TestCalculate_StoresRoundedRoute(t *testing.T) {
	db := setupTestDB(t)
	trip := seedTrip(t, db, 3)
	provider := &stubProvider{result: defaultStubResult()}
	service := newRouteService(db, provider)

	route, err := service.Calculate(context.Background(), trip.ID)
	require.NoError(t, err)

	assert.Equal(t, trip.ID, route.TripID)
	assert.Equal(t, 1533, route.TotalDistanceMeters) // 1532.6 rounded
	assert.Equal(t, 7, route.TotalDurationMinutes)   // 421.4 s / 60 rounded
	assert.Equal(t, models.TravelModeCar, route.TravelMode)
	assert.Len(t, route.WaypointOrder, 3)
	assert.Equal(t, "LineString", route.RouteGeometry.Type)
	assert.False(t, route.CalculatedAt.IsZero())

	require.NotNil(t, route.IsFeasible)
	assert.True(t, *route.IsFeasible) // 7 travel + 90 stops vs 2-day window
}

func TestCalculate_SortsByOrderIndex(t *testing.T) {
	db := setupTestDB(t)
	trip := seedTrip(t, db, 0)

	// Insert out of order with distinct coordinates per index.
	for _, idx := range []int{2, 0, 1} {
		wp := models.Waypoint{
			ID:              uuid.New().String(),
			TripID:          trip.ID,
			Name:            "Stop",
			Latitude:        "47.0",
			Longitude:       "19." + string(rune('0'+idx)),
			Category:        models.WaypointCategoryCustom,
			OrderIndex:      idx,
			DurationMinutes: 30,
		}
		require.NoError(t, db.Create(&wp).Error)
	}

	provider := &stubProvider{result: defaultStubResult()}
	service := newRouteService(db, provider)

	_, err := service.Calculate(context.Background(), trip.ID)
	require.NoError(t, err)

	require.Len(t, provider.coords, 3)
	assert.Equal(t, "19.0", provider.coords[0].Longitude)
	assert.Equal(t, "19.1", provider.coords[1].Longitude)
	assert.Equal(t, "19.2", provider.coords[2].Longitude)
}

func TestCalculate_UpsertKeepsOneRowPerTrip(t *testing.T) {
	db := setupTestDB(t)
	trip := seedTrip(t, db, 2)
	provider := &stubProvider{result: defaultStubResult()}
	service := newRouteService(db, provider)

	first, err := service.Calculate(context.Background(), trip.ID)
	require.NoError(t, err)

	provider.result = &osrm.RouteResult{
		DistanceMeters:  9000.4,
		DurationSeconds: 1800,
		Geometry:        defaultStubResult().Geometry,
	}

	second, err := service.Calculate(context.Background(), trip.ID)
	require.NoError(t, err)

	// Replacement, not accumulation: the surviving row keeps its identity.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 9000, second.TotalDistanceMeters)
	assert.Equal(t, 30, second.TotalDurationMinutes)

	var count int64
	require.NoError(t, db.Model(&models.Route{}).Where("trip_id = ?", trip.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCalculate_TripNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := newRouteService(db, &stubProvider{result: defaultStubResult()})

	_, err := service.Calculate(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestCalculate_InsufficientWaypoints(t *testing.T) {
	db := setupTestDB(t)
	provider := &stubProvider{result: defaultStubResult()}
	service := newRouteService(db, provider)

	for _, count := range []int{0, 1} {
		trip := seedTrip(t, db, count)
		_, err := service.Calculate(context.Background(), trip.ID)
		assert.ErrorIs(t, err, ErrInsufficientWaypoints)
	}

	assert.Zero(t, provider.calls, "provider must not be called without enough waypoints")
}

func TestCalculate_ProviderErrorPropagatesAndNothingStored(t *testing.T) {
	db := setupTestDB(t)
	trip := seedTrip(t, db, 2)

	providerErr := errors.New("boom")
	service := newRouteService(db, &stubProvider{err: providerErr})

	_, err := service.Calculate(context.Background(), trip.ID)
	assert.ErrorIs(t, err, providerErr)

	var count int64
	require.NoError(t, db.Model(&models.Route{}).Where("trip_id = ?", trip.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCalculate_NoRouteFoundLeavesPreviousRoute(t *testing.T) {
	db := setupTestDB(t)
	trip := seedTrip(t, db, 2)
	provider := &stubProvider{result: defaultStubResult()}
	service := newRouteService(db, provider)

	first, err := service.Calculate(context.Background(), trip.ID)
	require.NoError(t, err)

	provider.result = nil
	provider.err = osrm.ErrNoRouteFound

	_, err = service.Calculate(context.Background(), trip.ID)
	assert.ErrorIs(t, err, osrm.ErrNoRouteFound)

	stored, err := service.GetByTripID(trip.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, first.TotalDistanceMeters, stored.TotalDistanceMeters)
}

func TestGetByTripID_NotCalculated(t *testing.T) {
	db := setupTestDB(t)
	trip := seedTrip(t, db, 2)
	service := newRouteService(db, &stubProvider{result: defaultStubResult()})

	_, err := service.GetByTripID(trip.ID)
	assert.ErrorIs(t, err, ErrRouteNotFound)
}
