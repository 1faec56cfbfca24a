// File: /services/trip_service.go
package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripplanner-api/models"
	"tripplanner-api/repositories"
)

type TripService struct {
	trips *repositories.TripRepository
}

func NewTripService(trips *repositories.TripRepository) *TripService {
	return &TripService{trips: trips}
}

// Clone deep-copies a trip and its waypoints into a new trip owned by the
// acting member (or the original owner when no actor is known). Lifecycle
// fields reset to draft/private; waypoint order and durations are copied
// verbatim. The computed route is not carried over because its snapshot
// references the old waypoint ids.
func (s *TripService) Clone(tripID, actingMemberID string) (*models.Trip, error) {
	original, err := s.trips.FindByIDWithWaypoints(tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	owner := original.MemberID
	if actingMemberID != "" {
		owner = &actingMemberID
	}

	clone := &models.Trip{
		ID:          uuid.New().String(),
		MemberID:    owner,
		Title:       original.Title + " (copy)",
		Description: original.Description,
		City:        original.City,
		Country:     original.Country,
		StartDate:   original.StartDate,
		EndDate:     original.EndDate,
		TravelMode:  original.TravelMode,
		Status:      models.TripStatusDraft,
		Visibility:  models.VisibilityPrivate,
	}

	waypoints := make([]models.Waypoint, 0, len(original.Waypoints))
	for _, wp := range original.Waypoints {
		waypoints = append(waypoints, models.Waypoint{
			ID:              uuid.New().String(),
			TripID:          clone.ID,
			Name:            wp.Name,
			Description:     wp.Description,
			Latitude:        wp.Latitude,
			Longitude:       wp.Longitude,
			Address:         wp.Address,
			Category:        wp.Category,
			OrderIndex:      wp.OrderIndex,
			DurationMinutes: wp.DurationMinutes,
			IsStartPoint:    wp.IsStartPoint,
		})
	}

	if err := s.trips.CreateTripWithWaypoints(clone, waypoints); err != nil {
		return nil, err
	}

	// Provenance is best-effort bookkeeping: a failure here is reported
	// but never rolls back the already-created clone.
	record := &models.TripClone{
		ID:             uuid.New().String(),
		OriginalTripID: original.ID,
		ClonedTripID:   clone.ID,
		MemberID:       owner,
	}
	if err := s.trips.CreateClone(record); err != nil {
		fmt.Printf("Warning: failed to record clone provenance %s -> %s: %v\n", original.ID, clone.ID, err)
	}

	return s.trips.FindByIDWithWaypoints(clone.ID)
}

// EnsureShareToken lazily mints the unguessable token that gates access to
// a shared trip. Idempotent: repeated calls never rotate an existing token.
// Under concurrent first-time calls only one generated token is stored; the
// loser of the conditional update simply reads back the winner's token.
func (s *TripService) EnsureShareToken(tripID string) (*models.Trip, error) {
	trip, err := s.trips.FindByID(tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	if trip.ShareToken != nil && *trip.ShareToken != "" {
		return trip, nil
	}

	token, err := generateShareToken()
	if err != nil {
		return nil, err
	}

	visibility := ""
	if trip.Visibility == models.VisibilityPrivate {
		visibility = models.VisibilityShared
	}

	if _, err := s.trips.ClaimShareToken(tripID, token, visibility); err != nil {
		return nil, err
	}

	return s.trips.FindByID(tripID)
}

// generateShareToken returns 16 bytes of crypto/rand entropy hex-encoded.
// The token is the sole secret gating shared visibility, so it must not be
// derivable from the trip id or creation time.
func generateShareToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate share token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
