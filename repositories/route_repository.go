// File: /repositories/route_repository.go
package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripplanner-api/models"
)

type RouteRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// FindByTripID retrieves the computed route for a trip
func (r *RouteRepository) FindByTripID(tripID string) (*models.Route, error) {
	var route models.Route
	if err := r.db.First(&route, "trip_id = ?", tripID).Error; err != nil {
		return nil, err
	}
	return &route, nil
}

// Upsert inserts the route or replaces the existing row for the same trip
// in a single statement. The unique index on routes.trip_id turns a race
// between two concurrent calculations into last-write-wins instead of two
// rows; a plain find-then-insert would not.
func (r *RouteRepository) Upsert(route *models.Route) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "trip_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"waypoint_order",
			"total_distance_meters",
			"total_duration_minutes",
			"route_geometry",
			"travel_mode",
			"is_feasible",
			"feasibility_message",
			"calculated_at",
			"updated_at",
		}),
	}).Create(route).Error
}
