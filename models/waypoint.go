// File: /models/waypoint.go
package models

import (
	"time"
)

// Waypoint categories
const (
	WaypointCategorySight      = "sight"
	WaypointCategoryMuseum     = "museum"
	WaypointCategoryRestaurant = "restaurant"
	WaypointCategoryHotel      = "hotel"
	WaypointCategoryPark       = "park"
	WaypointCategoryCustom     = "custom"
)

// Waypoint is a single stop in a trip. Latitude and longitude are stored as
// decimal strings, not floats, so coordinates round-trip through the API and
// the database without rounding drift. OrderIndex is the caller-assigned
// visiting sequence and is the only authoritative ordering.
type Waypoint struct {
	ID              string    `json:"id" gorm:"primaryKey;size:191"`
	TripID          string    `json:"trip_id" gorm:"not null;size:191;index"`
	Name            string    `json:"name" gorm:"not null;size:191"`
	Description     string    `json:"description" gorm:"type:text"`
	Latitude        string    `json:"latitude" gorm:"not null;size:50"`
	Longitude       string    `json:"longitude" gorm:"not null;size:50"`
	Address         string    `json:"address" gorm:"size:500"`
	Category        string    `json:"category" gorm:"not null;size:50;default:'custom'"`
	OrderIndex      int       `json:"order_index" gorm:"not null;default:0"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null;default:30"`
	IsStartPoint    bool      `json:"is_start_point" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Trip Trip `json:"-" gorm:"foreignKey:TripID"`
}

func IsValidWaypointCategory(category string) bool {
	switch category {
	case WaypointCategorySight, WaypointCategoryMuseum, WaypointCategoryRestaurant,
		WaypointCategoryHotel, WaypointCategoryPark, WaypointCategoryCustom:
		return true
	}
	return false
}
