// File: /controllers/waypoint_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripplanner-api/models"
	"tripplanner-api/utils"
)

type WaypointController struct {
	db *gorm.DB
}

func NewWaypointController(db *gorm.DB) *WaypointController {
	return &WaypointController{db: db}
}

type WaypointRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Latitude        string `json:"latitude" binding:"required"`
	Longitude       string `json:"longitude" binding:"required"`
	Address         string `json:"address"`
	Category        string `json:"category"`
	OrderIndex      *int   `json:"order_index"`
	DurationMinutes *int   `json:"duration_minutes"`
	IsStartPoint    bool   `json:"is_start_point"`
}

type ReorderRequest struct {
	Waypoints []struct {
		ID         string `json:"id" binding:"required"`
		OrderIndex int    `json:"order_index"`
	} `json:"waypoints" binding:"required"`
}

func (wc *WaypointController) GetWaypoints(c *gin.Context) {
	memberID := c.GetString("member_id")
	tripID := c.Param("id")

	trip, ok := wc.loadVisibleTrip(c, tripID, memberID)
	if !ok {
		return
	}

	var waypoints []models.Waypoint
	err := wc.db.Where("trip_id = ?", trip.ID).Order("order_index ASC").Find(&waypoints).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch waypoints"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"waypoints": waypoints})
}

func (wc *WaypointController) CreateWaypoint(c *gin.Context) {
	memberID := c.GetString("member_id")
	tripID := c.Param("id")

	if _, ok := wc.loadOwnedTrip(c, tripID, memberID); !ok {
		return
	}

	var req WaypointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg, ok := validateWaypointRequest(&req); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	waypoint := models.Waypoint{
		ID:              uuid.New().String(),
		TripID:          tripID,
		Name:            req.Name,
		Description:     req.Description,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Address:         req.Address,
		Category:        defaultString(req.Category, models.WaypointCategoryCustom),
		DurationMinutes: 30,
		IsStartPoint:    req.IsStartPoint,
	}
	if req.OrderIndex != nil {
		waypoint.OrderIndex = *req.OrderIndex
	}
	if req.DurationMinutes != nil {
		waypoint.DurationMinutes = *req.DurationMinutes
	}

	if err := wc.db.Create(&waypoint).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create waypoint"})
		return
	}

	c.JSON(http.StatusCreated, waypoint)
}

func (wc *WaypointController) UpdateWaypoint(c *gin.Context) {
	memberID := c.GetString("member_id")
	waypointID := c.Param("id")

	waypoint, ok := wc.loadOwnedWaypoint(c, waypointID, memberID)
	if !ok {
		return
	}

	var req WaypointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg, ok := validateWaypointRequest(&req); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	updates := map[string]interface{}{
		"name":           req.Name,
		"description":    req.Description,
		"latitude":       req.Latitude,
		"longitude":      req.Longitude,
		"address":        req.Address,
		"is_start_point": req.IsStartPoint,
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.OrderIndex != nil {
		updates["order_index"] = *req.OrderIndex
	}
	if req.DurationMinutes != nil {
		updates["duration_minutes"] = *req.DurationMinutes
	}

	if err := wc.db.Model(waypoint).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update waypoint"})
		return
	}

	wc.db.First(waypoint, "id = ?", waypointID)
	c.JSON(http.StatusOK, waypoint)
}

func (wc *WaypointController) DeleteWaypoint(c *gin.Context) {
	memberID := c.GetString("member_id")
	waypointID := c.Param("id")

	waypoint, ok := wc.loadOwnedWaypoint(c, waypointID, memberID)
	if !ok {
		return
	}

	if err := wc.db.Delete(waypoint).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete waypoint"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Waypoint deleted successfully"})
}

// ReorderWaypoints rewrites order_index for the trip's waypoints in one
// transaction. The new order becomes authoritative on the next route
// calculation; the stored route keeps its old snapshot until then.
func (wc *WaypointController) ReorderWaypoints(c *gin.Context) {
	memberID := c.GetString("member_id")
	tripID := c.Param("id")

	if _, ok := wc.loadOwnedTrip(c, tripID, memberID); !ok {
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := wc.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Waypoints {
			result := tx.Model(&models.Waypoint{}).
				Where("id = ? AND trip_id = ?", item.ID, tripID).
				Update("order_index", item.OrderIndex)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder waypoints"})
		return
	}

	var waypoints []models.Waypoint
	wc.db.Where("trip_id = ?", tripID).Order("order_index ASC").Find(&waypoints)
	c.JSON(http.StatusOK, gin.H{"waypoints": waypoints})
}

func (wc *WaypointController) loadVisibleTrip(c *gin.Context, tripID, memberID string) (*models.Trip, bool) {
	var trip models.Trip
	if err := wc.db.First(&trip, "id = ?", tripID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return nil, false
	}
	if !tripVisibleTo(&trip, memberID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return nil, false
	}
	return &trip, true
}

func (wc *WaypointController) loadOwnedTrip(c *gin.Context, tripID, memberID string) (*models.Trip, bool) {
	var trip models.Trip
	if err := wc.db.First(&trip, "id = ? AND member_id = ?", tripID, memberID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found or access denied"})
		return nil, false
	}
	return &trip, true
}

func (wc *WaypointController) loadOwnedWaypoint(c *gin.Context, waypointID, memberID string) (*models.Waypoint, bool) {
	var waypoint models.Waypoint
	if err := wc.db.First(&waypoint, "id = ?", waypointID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Waypoint not found"})
		return nil, false
	}
	if _, ok := wc.loadOwnedTrip(c, waypoint.TripID, memberID); !ok {
		return nil, false
	}
	return &waypoint, true
}

func validateWaypointRequest(req *WaypointRequest) (string, bool) {
	if !utils.IsValidLatitude(req.Latitude) {
		return "Invalid latitude", false
	}
	if !utils.IsValidLongitude(req.Longitude) {
		return "Invalid longitude", false
	}
	if req.Category != "" && !models.IsValidWaypointCategory(req.Category) {
		return "Invalid category", false
	}
	if req.DurationMinutes != nil && *req.DurationMinutes < 0 {
		return "duration_minutes must not be negative", false
	}
	if req.OrderIndex != nil && *req.OrderIndex < 0 {
		return "order_index must not be negative", false
	}
	return "", true
}
