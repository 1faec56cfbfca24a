// File: /controllers/trip_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripplanner-api/models"
	"tripplanner-api/repositories"
	"tripplanner-api/services"
)

type TripController struct {
	db           *gorm.DB
	trips        *repositories.TripRepository
	tripService  *services.TripService
	emailService *services.EmailService
	shareBaseURL string
}

func NewTripController(db *gorm.DB, tripService *services.TripService, emailService *services.EmailService, shareBaseURL string) *TripController {
	return &TripController{
		db:           db,
		trips:        repositories.NewTripRepository(db),
		tripService:  tripService,
		emailService: emailService,
		shareBaseURL: shareBaseURL,
	}
}

type TripRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	TravelMode  string     `json:"travel_mode"`
	Status      string     `json:"status"`
	Visibility  string     `json:"visibility"`
}

func (tc *TripController) GetTrips(c *gin.Context) {
	memberID := c.GetString("member_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	search := c.Query("search")
	status := c.Query("status")
	visibility := c.Query("visibility")

	// A chained *gorm.DB is single-use once a finisher ran, so each
	// statement gets its own freshly built query.
	filtered := func() *gorm.DB {
		query := tc.db.Model(&models.Trip{}).
			Where("member_id = ? OR visibility = ?", memberID, models.VisibilityPublic)
		if search != "" {
			like := "%" + search + "%"
			query = query.Where("title LIKE ? OR city LIKE ? OR country LIKE ?", like, like, like)
		}
		if status != "" {
			query = query.Where("status = ?", status)
		}
		if visibility != "" {
			query = query.Where("visibility = ?", visibility)
		}
		return query
	}

	var total int64
	filtered().Count(&total)

	var trips []models.Trip
	err := filtered().Preload("Waypoints", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC")
	}).Order("created_at DESC").Offset(offset).Limit(limit).Find(&trips).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trips"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trips": trips,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}

func (tc *TripController) CreateTrip(c *gin.Context) {
	memberID := c.GetString("member_id")

	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg, ok := validateTripEnums(&req); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	trip := models.Trip{
		ID:          uuid.New().String(),
		MemberID:    &memberID,
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
		Country:     req.Country,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TravelMode:  defaultString(req.TravelMode, models.TravelModeFoot),
		Status:      defaultString(req.Status, models.TripStatusDraft),
		Visibility:  defaultString(req.Visibility, models.VisibilityPrivate),
	}

	if err := tc.db.Create(&trip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip"})
		return
	}

	c.JSON(http.StatusCreated, trip)
}

func (tc *TripController) GetTrip(c *gin.Context) {
	memberID := c.GetString("member_id")
	tripID := c.Param("id")

	var trip models.Trip
	err := tc.db.Preload("Waypoints", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC")
	}).Preload("Route").First(&trip, "id = ?", tripID).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	if !tripVisibleTo(&trip, memberID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	c.JSON(http.StatusOK, trip)
}

func (tc *TripController) UpdateTrip(c *gin.Context) {
	memberID := c.GetString("member_id")
	tripID := c.Param("id")

	var trip models.Trip
	if err := tc.db.First(&trip, "id = ? AND member_id = ?", tripID, memberID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found or access denied"})
		return
	}

	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg, ok := validateTripEnums(&req); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	updates := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"city":        req.City,
		"country":     req.Country,
		"start_date":  req.StartDate,
		"end_date":    req.EndDate,
	}
	if req.TravelMode != "" {
		updates["travel_mode"] = req.TravelMode
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.Visibility != "" {
		updates["visibility"] = req.Visibility
	}

	if err := tc.db.Model(&trip).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trip"})
		return
	}

	tc.db.Preload("Waypoints", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC")
	}).First(&trip, "id = ?", tripID)
	c.JSON(http.StatusOK, trip)
}

func (tc *TripController) DeleteTrip(c *gin.Context) {
	memberID := c.GetString("member_id")
	tripID := c.Param("id")

	var trip models.Trip
	if err := tc.db.First(&trip, "id = ? AND member_id = ?", tripID, memberID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found or access denied"})
		return
	}

	if err := tc.trips.DeleteTrip(tripID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted successfully"})
}

func (tc *TripController) CloneTrip(c *gin.Context) {
	memberID := c.GetString("member_id")
	tripID := c.Param("id")

	clone, err := tc.tripService.Clone(tripID, memberID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, clone)
}

type ShareTripRequest struct {
	NotifyEmail string `json:"notify_email" binding:"omitempty,email"`
}

func (tc *TripController) ShareTrip(c *gin.Context) {
	memberID := c.GetString("member_id")
	tripID := c.Param("id")

	// Only the owner may mint a share link
	var owned models.Trip
	if err := tc.db.First(&owned, "id = ? AND member_id = ?", tripID, memberID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found or access denied"})
		return
	}

	var req ShareTripRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := tc.tripService.EnsureShareToken(tripID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	shareURL := ""
	if trip.ShareToken != nil {
		shareURL = fmt.Sprintf("%s/%s", tc.shareBaseURL, *trip.ShareToken)
	}

	if req.NotifyEmail != "" && shareURL != "" {
		if err := tc.emailService.SendShareEmail(req.NotifyEmail, trip.Title, shareURL); err != nil {
			fmt.Printf("Failed to send share email: %v\n", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"trip":      trip,
		"share_url": shareURL,
	})
}

// GetSharedTrip serves the public, token-gated view of a trip. The token is
// the only credential; trips that went back to private are hidden again.
func (tc *TripController) GetSharedTrip(c *gin.Context) {
	token := c.Param("token")

	trip, err := tc.trips.FindByShareToken(token)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shared trip not found"})
		return
	}

	if trip.Visibility != models.VisibilityShared && trip.Visibility != models.VisibilityPublic {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shared trip not found"})
		return
	}

	c.JSON(http.StatusOK, trip)
}

func validateTripEnums(req *TripRequest) (string, bool) {
	if req.TravelMode != "" && !models.IsValidTravelMode(req.TravelMode) {
		return "Invalid travel_mode", false
	}
	if req.Status != "" && !models.IsValidTripStatus(req.Status) {
		return "Invalid status", false
	}
	if req.Visibility != "" && !models.IsValidVisibility(req.Visibility) {
		return "Invalid visibility", false
	}
	return "", true
}

func tripVisibleTo(trip *models.Trip, memberID string) bool {
	if trip.Visibility == models.VisibilityPublic {
		return true
	}
	return trip.MemberID != nil && *trip.MemberID == memberID
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
