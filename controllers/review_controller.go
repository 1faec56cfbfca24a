// File: /controllers/review_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripplanner-api/models"
	"tripplanner-api/utils"
)

type ReviewController struct {
	db *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{db: db}
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (rc *ReviewController) GetReviews(c *gin.Context) {
	tripID := c.Param("id")

	var trip models.Trip
	if err := rc.db.First(&trip, "id = ?", tripID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	var reviews []models.TripReview
	err := rc.db.Preload("Member").Where("trip_id = ?", tripID).
		Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	for i := range reviews {
		reviews[i].Member.Password = ""
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	memberID := c.GetString("member_id")
	tripID := c.Param("id")

	var trip models.Trip
	if err := rc.db.First(&trip, "id = ?", tripID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// One review per member per trip
	var existing models.TripReview
	if err := rc.db.Where("trip_id = ? AND member_id = ?", tripID, memberID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this trip"})
		return
	}

	review := models.TripReview{
		ID:       uuid.New().String(),
		TripID:   tripID,
		MemberID: memberID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := rc.db.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (rc *ReviewController) UpdateReview(c *gin.Context) {
	memberID := c.GetString("member_id")
	reviewID := c.Param("id")

	var review models.TripReview
	if err := rc.db.First(&review, "id = ? AND member_id = ?", reviewID, memberID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found or access denied"})
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"rating":  req.Rating,
		"comment": req.Comment,
	}
	if err := rc.db.Model(&review).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}

	c.JSON(http.StatusOK, review)
}

func (rc *ReviewController) DeleteReview(c *gin.Context) {
	memberID := c.GetString("member_id")
	reviewID := c.Param("id")

	var review models.TripReview
	if err := rc.db.First(&review, "id = ? AND member_id = ?", reviewID, memberID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found or access denied"})
		return
	}

	if err := rc.db.Delete(&review).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete review")
		return
	}

	utils.SendSuccess(c, "Review deleted successfully", nil)
}
