// File: /models/trip_photo.go
package models

import (
	"time"
)

type TripPhoto struct {
	ID         string    `json:"id" gorm:"primaryKey;size:191"`
	TripID     string    `json:"trip_id" gorm:"not null;size:191;index"`
	WaypointID *string   `json:"waypoint_id" gorm:"size:191;index"`
	MemberID   string    `json:"member_id" gorm:"not null;size:191;index"`
	ImageURL   string    `json:"image_url" gorm:"not null;size:2000"`
	Caption    string    `json:"caption" gorm:"size:500"`
	CreatedAt  time.Time `json:"created_at"`

	Trip     Trip      `json:"-" gorm:"foreignKey:TripID"`
	Waypoint *Waypoint `json:"-" gorm:"foreignKey:WaypointID"`
	Member   Member    `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}
