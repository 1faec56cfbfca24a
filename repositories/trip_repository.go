// File: /repositories/trip_repository.go
package repositories

import (
	"gorm.io/gorm"

	"tripplanner-api/models"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

// FindByID retrieves a trip without relations
func (r *TripRepository) FindByID(id string) (*models.Trip, error) {
	var trip models.Trip
	if err := r.db.First(&trip, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

// FindByIDWithWaypoints retrieves a trip with its waypoints preloaded in
// order_index order
func (r *TripRepository) FindByIDWithWaypoints(id string) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.Preload("Waypoints", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC")
	}).First(&trip, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// FindByShareToken retrieves a trip by its share token
func (r *TripRepository) FindByShareToken(token string) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.Preload("Waypoints", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC")
	}).Preload("Route").First(&trip, "share_token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// CreateTripWithWaypoints inserts a trip and its waypoints in one
// transaction so a failed waypoint copy never leaves a half-built trip
func (r *TripRepository) CreateTripWithWaypoints(trip *models.Trip, waypoints []models.Waypoint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		for i := range waypoints {
			if err := tx.Create(&waypoints[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateClone records a trip duplication provenance row
func (r *TripRepository) CreateClone(clone *models.TripClone) error {
	return r.db.Create(clone).Error
}

// ClaimShareToken stores a share token for the trip only when no token has
// been stored yet. Concurrent first-time callers race on the conditional
// update; exactly one wins (RowsAffected > 0) and the trips.share_token
// unique index guards against duplicates slipping past it.
func (r *TripRepository) ClaimShareToken(tripID, token, visibility string) (bool, error) {
	updates := map[string]interface{}{"share_token": token}
	if visibility != "" {
		updates["visibility"] = visibility
	}

	result := r.db.Model(&models.Trip{}).
		Where("id = ? AND share_token IS NULL", tripID).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteTrip removes a trip and everything hanging off it. Children go
// first so the delete behaves like a cascade even without FK constraints
// (migration runs with foreign keys disabled).
func (r *TripRepository) DeleteTrip(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", id).Delete(&models.Waypoint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", id).Delete(&models.Route{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", id).Delete(&models.TripReview{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", id).Delete(&models.TripPhoto{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Trip{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
