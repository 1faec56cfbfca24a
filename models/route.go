// File: /models/route.go
package models

import (
	"time"
)

// Route is the computed travel path for a trip. At most one row exists per
// trip (unique index on TripID); recomputation replaces the row wholesale.
// WaypointOrder is a snapshot of the waypoint ids the route was computed
// from; later waypoint edits do not rewrite it, so the route stays a
// faithful record of what was actually calculated.
type Route struct {
	ID                   string      `json:"id" gorm:"primaryKey;size:191"`
	TripID               string      `json:"trip_id" gorm:"not null;size:191;uniqueIndex"`
	WaypointOrder        StringSlice `json:"waypoint_order" gorm:"type:json"`
	TotalDistanceMeters  int         `json:"total_distance_meters"`
	TotalDurationMinutes int         `json:"total_duration_minutes"`
	RouteGeometry        LineString  `json:"route_geometry" gorm:"type:json"`
	TravelMode           string      `json:"travel_mode" gorm:"size:50"`
	IsFeasible           *bool       `json:"is_feasible"`
	FeasibilityMessage   string      `json:"feasibility_message" gorm:"type:text"`
	CalculatedAt         time.Time   `json:"calculated_at"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`

	Trip Trip `json:"-" gorm:"foreignKey:TripID"`
}
