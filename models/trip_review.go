// File: /models/trip_review.go
package models

import (
	"time"
)

// TripReview holds a member's rating of a trip. One review per member per
// trip, enforced with a composite unique constraint.
type TripReview struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	TripID    string    `json:"trip_id" gorm:"not null;size:191;index;uniqueIndex:uk_trip_reviews_trip_member"`
	MemberID  string    `json:"member_id" gorm:"not null;size:191;index;uniqueIndex:uk_trip_reviews_trip_member"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Trip   Trip   `json:"-" gorm:"foreignKey:TripID"`
	Member Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}
