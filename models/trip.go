// File: /models/trip.go
package models

import (
	"time"
)

// Travel modes accepted for a trip. Only "car" maps to a driving profile
// when calling the routing provider; see the osrm package.
const (
	TravelModeCar             = "car"
	TravelModeFoot            = "foot"
	TravelModeBike            = "bike"
	TravelModePublicTransport = "public_transport"
)

// Trip lifecycle status values
const (
	TripStatusDraft      = "draft"
	TripStatusPlanned    = "planned"
	TripStatusInProgress = "in_progress"
	TripStatusCompleted  = "completed"
)

// Trip visibility values
const (
	VisibilityPrivate = "private"
	VisibilityShared  = "shared"
	VisibilityPublic  = "public"
)

type Trip struct {
	ID          string     `json:"id" gorm:"primaryKey;size:191"`
	MemberID    *string    `json:"member_id" gorm:"size:191;index"`
	Title       string     `json:"title" gorm:"not null;size:191"`
	Description string     `json:"description" gorm:"type:text"`
	City        string     `json:"city" gorm:"size:191"`
	Country     string     `json:"country" gorm:"size:191"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	TravelMode  string     `json:"travel_mode" gorm:"not null;size:50;default:'foot'"`
	Status      string     `json:"status" gorm:"not null;size:50;default:'draft'"`
	Visibility  string     `json:"visibility" gorm:"not null;size:50;default:'private'"`
	ShareToken  *string    `json:"share_token,omitempty" gorm:"uniqueIndex;size:191"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relationships
	Member    *Member      `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Waypoints []Waypoint   `json:"waypoints,omitempty" gorm:"foreignKey:TripID"`
	Route     *Route       `json:"route,omitempty" gorm:"foreignKey:TripID"`
	Reviews   []TripReview `json:"reviews,omitempty" gorm:"foreignKey:TripID"`
	Photos    []TripPhoto  `json:"photos,omitempty" gorm:"foreignKey:TripID"`
}

func IsValidTravelMode(mode string) bool {
	switch mode {
	case TravelModeCar, TravelModeFoot, TravelModeBike, TravelModePublicTransport:
		return true
	}
	return false
}

func IsValidTripStatus(status string) bool {
	switch status {
	case TripStatusDraft, TripStatusPlanned, TripStatusInProgress, TripStatusCompleted:
		return true
	}
	return false
}

func IsValidVisibility(visibility string) bool {
	switch visibility {
	case VisibilityPrivate, VisibilityShared, VisibilityPublic:
		return true
	}
	return false
}
