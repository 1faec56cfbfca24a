// File: /models/member_preference.go
package models

import (
	"time"
)

// Travel pace values for member preferences
const (
	PaceRelaxed   = "relaxed"
	PaceModerate  = "moderate"
	PaceIntensive = "intensive"
)

// MemberPreference stores a member's planning defaults. One row per member
// (unique index on MemberID), created lazily with empty values the first
// time preferences are read. Empty fields mean "no preference".
type MemberPreference struct {
	ID                  string      `json:"id" gorm:"primaryKey;size:191"`
	MemberID            string      `json:"member_id" gorm:"not null;size:191;uniqueIndex"`
	PreferredTravelMode string      `json:"preferred_travel_mode" gorm:"size:50"`
	PreferredCategories StringSlice `json:"preferred_categories" gorm:"type:json"`
	PreferredPace       string      `json:"preferred_pace" gorm:"size:50"`
	HomeCity            string      `json:"home_city" gorm:"size:191"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`

	Member Member `json:"-" gorm:"foreignKey:MemberID"`
}

func IsValidPace(pace string) bool {
	switch pace {
	case PaceRelaxed, PaceModerate, PaceIntensive:
		return true
	}
	return false
}
