// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tripplanner-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Member{},
		&models.MemberPreference{},
		&models.Trip{},
		&models.Waypoint{},
		&models.Route{},
		&models.TripClone{},
		&models.TripReview{},
		&models.TripPhoto{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Composite indexes for the hot list/lookup paths. The uniqueness
	// constraints that the upsert and share-token flows depend on
	// (routes.trip_id, trips.share_token, trip_reviews trip+member) are
	// declared on the models and created by AutoMigrate.

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_trips_member_created ON trips(member_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for trips: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_waypoints_trip_order ON waypoints(trip_id, order_index)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for waypoints: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_trip_clones_original ON trip_clones(original_trip_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for trip_clones: %v\n", err)
	}

	return nil
}
