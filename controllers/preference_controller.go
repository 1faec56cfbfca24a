// File: /controllers/preference_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripplanner-api/models"
)

type PreferenceController struct {
	db *gorm.DB
}

func NewPreferenceController(db *gorm.DB) *PreferenceController {
	return &PreferenceController{db: db}
}

type PreferenceRequest struct {
	PreferredTravelMode string   `json:"preferred_travel_mode"`
	PreferredCategories []string `json:"preferred_categories"`
	PreferredPace       string   `json:"preferred_pace"`
	HomeCity            string   `json:"home_city"`
}

// GetPreferences returns the member's planning defaults, creating an empty
// row on first read so every member always has exactly one preference set.
func (pc *PreferenceController) GetPreferences(c *gin.Context) {
	memberID := c.GetString("member_id")

	var pref models.MemberPreference
	err := pc.db.First(&pref, "member_id = ?", memberID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pref = models.MemberPreference{
			ID:       uuid.New().String(),
			MemberID: memberID,
		}
		if err := pc.db.Create(&pref).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create preferences"})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch preferences"})
		return
	}

	c.JSON(http.StatusOK, pref)
}

// UpdatePreferences edits the member's preference row, creating it when the
// member never read their preferences before
func (pc *PreferenceController) UpdatePreferences(c *gin.Context) {
	memberID := c.GetString("member_id")

	var req PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg, ok := validatePreferenceRequest(&req); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var pref models.MemberPreference
	err := pc.db.First(&pref, "member_id = ?", memberID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pref = models.MemberPreference{
			ID:                  uuid.New().String(),
			MemberID:            memberID,
			PreferredTravelMode: req.PreferredTravelMode,
			PreferredCategories: models.StringSlice(req.PreferredCategories),
			PreferredPace:       req.PreferredPace,
			HomeCity:            req.HomeCity,
		}
		if err := pc.db.Create(&pref).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
			return
		}
		c.JSON(http.StatusOK, pref)
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch preferences"})
		return
	}

	updates := map[string]interface{}{
		"preferred_travel_mode": req.PreferredTravelMode,
		"preferred_categories":  models.StringSlice(req.PreferredCategories),
		"preferred_pace":        req.PreferredPace,
		"home_city":             req.HomeCity,
	}
	if err := pc.db.Model(&pref).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
		return
	}

	pc.db.First(&pref, "member_id = ?", memberID)
	c.JSON(http.StatusOK, pref)
}

func validatePreferenceRequest(req *PreferenceRequest) (string, bool) {
	if req.PreferredTravelMode != "" && !models.IsValidTravelMode(req.PreferredTravelMode) {
		return "Invalid preferred_travel_mode", false
	}
	if req.PreferredPace != "" && !models.IsValidPace(req.PreferredPace) {
		return "Invalid preferred_pace", false
	}
	for _, category := range req.PreferredCategories {
		if !models.IsValidWaypointCategory(category) {
			return "Invalid category: " + category, false
		}
	}
	return "", true
}
