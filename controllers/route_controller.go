// File: /controllers/route_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/twpayne/go-polyline"
	"gorm.io/gorm"

	"tripplanner-api/models"
	"tripplanner-api/services"
)

type RouteController struct {
	db           *gorm.DB
	routeService *services.RouteService
}

func NewRouteController(db *gorm.DB, routeService *services.RouteService) *RouteController {
	return &RouteController{db: db, routeService: routeService}
}

type RouteResponse struct {
	models.Route
	// EncodedPolyline is a rendering convenience for map widgets. It is
	// derived on the fly; the stored GeoJSON stays the lossless source of
	// truth.
	EncodedPolyline string `json:"encoded_polyline,omitempty"`
}

func (rc *RouteController) GetRoute(c *gin.Context) {
	memberID := c.GetString("member_id")
	tripID := c.Param("id")

	if !rc.requireVisibleTrip(c, tripID, memberID) {
		return
	}

	route, err := rc.routeService.GetByTripID(tripID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRouteResponse(route))
}

func (rc *RouteController) CalculateRoute(c *gin.Context) {
	memberID := c.GetString("member_id")
	tripID := c.Param("id")

	if !rc.requireOwnedTrip(c, tripID, memberID) {
		return
	}

	route, err := rc.routeService.Calculate(c.Request.Context(), tripID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRouteResponse(route))
}

// GetFeasibility reports the verdict stored with the trip's route. A nil
// verdict means the trip had no complete date window when the route was
// calculated.
func (rc *RouteController) GetFeasibility(c *gin.Context) {
	memberID := c.GetString("member_id")
	tripID := c.Param("id")

	if !rc.requireVisibleTrip(c, tripID, memberID) {
		return
	}

	route, err := rc.routeService.GetByTripID(tripID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_feasible":         route.IsFeasible,
		"feasibility_message": route.FeasibilityMessage,
		"calculated_at":       route.CalculatedAt,
	})
}

func (rc *RouteController) requireVisibleTrip(c *gin.Context, tripID, memberID string) bool {
	var trip models.Trip
	if err := rc.db.First(&trip, "id = ?", tripID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return false
	}
	if !tripVisibleTo(&trip, memberID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return false
	}
	return true
}

func (rc *RouteController) requireOwnedTrip(c *gin.Context, tripID, memberID string) bool {
	var trip models.Trip
	if err := rc.db.First(&trip, "id = ? AND member_id = ?", tripID, memberID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found or access denied"})
		return false
	}
	return true
}

func toRouteResponse(route *models.Route) RouteResponse {
	resp := RouteResponse{Route: *route}

	if len(route.RouteGeometry.Coordinates) > 0 {
		// GeoJSON stores [lon, lat]; polyline encoding expects [lat, lon]
		coords := make([][]float64, 0, len(route.RouteGeometry.Coordinates))
		for _, pair := range route.RouteGeometry.Coordinates {
			if len(pair) < 2 {
				continue
			}
			coords = append(coords, []float64{pair[1], pair[0]})
		}
		resp.EncodedPolyline = string(polyline.EncodeCoords(coords))
	}

	return resp
}
