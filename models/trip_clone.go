// File: /models/trip_clone.go
package models

import (
	"time"
)

// TripClone is a write-once provenance record linking an original trip to
// its copy. Rows are never updated or deleted by the application.
type TripClone struct {
	ID             string    `json:"id" gorm:"primaryKey;size:191"`
	OriginalTripID string    `json:"original_trip_id" gorm:"not null;size:191;index"`
	ClonedTripID   string    `json:"cloned_trip_id" gorm:"not null;size:191;index"`
	MemberID       *string   `json:"member_id" gorm:"size:191;index"`
	CreatedAt      time.Time `json:"created_at"`

	OriginalTrip Trip    `json:"-" gorm:"foreignKey:OriginalTripID"`
	ClonedTrip   Trip    `json:"-" gorm:"foreignKey:ClonedTripID"`
	Member       *Member `json:"-" gorm:"foreignKey:MemberID"`
}
