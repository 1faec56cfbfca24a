// File: /controllers/photo_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripplanner-api/models"
	"tripplanner-api/utils"
)

type PhotoController struct {
	db *gorm.DB
}

func NewPhotoController(db *gorm.DB) *PhotoController {
	return &PhotoController{db: db}
}

type PhotoRequest struct {
	WaypointID *string `json:"waypoint_id"`
	ImageURL   string  `json:"image_url" binding:"required,url"`
	Caption    string  `json:"caption"`
}

func (pc *PhotoController) GetPhotos(c *gin.Context) {
	tripID := c.Param("id")

	var trip models.Trip
	if err := pc.db.First(&trip, "id = ?", tripID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	var photos []models.TripPhoto
	err := pc.db.Where("trip_id = ?", tripID).Order("created_at DESC").Find(&photos).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch photos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

func (pc *PhotoController) CreatePhoto(c *gin.Context) {
	memberID := c.GetString("member_id")
	tripID := c.Param("id")

	var trip models.Trip
	if err := pc.db.First(&trip, "id = ?", tripID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	var req PhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.WaypointID != nil {
		var waypoint models.Waypoint
		if err := pc.db.First(&waypoint, "id = ? AND trip_id = ?", *req.WaypointID, tripID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Waypoint does not belong to this trip"})
			return
		}
	}

	photo := models.TripPhoto{
		ID:         uuid.New().String(),
		TripID:     tripID,
		WaypointID: req.WaypointID,
		MemberID:   memberID,
		ImageURL:   req.ImageURL,
		Caption:    req.Caption,
	}

	if err := pc.db.Create(&photo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create photo"})
		return
	}

	c.JSON(http.StatusCreated, photo)
}

func (pc *PhotoController) DeletePhoto(c *gin.Context) {
	memberID := c.GetString("member_id")
	photoID := c.Param("id")

	var photo models.TripPhoto
	if err := pc.db.First(&photo, "id = ? AND member_id = ?", photoID, memberID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found or access denied"})
		return
	}

	if err := pc.db.Delete(&photo).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete photo")
		return
	}

	utils.SendSuccess(c, "Photo deleted successfully", nil)
}
