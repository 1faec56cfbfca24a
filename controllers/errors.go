// File: /controllers/errors.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner-api/osrm"
	"tripplanner-api/services"
)

// respondServiceError translates service-layer errors into transport
// responses. Upstream outage and unroutable waypoints map to different
// statuses so clients can show "try again" versus "fix your waypoints".
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTripNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
	case errors.Is(err, services.ErrRouteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No route has been calculated for this trip yet"})
	case errors.Is(err, services.ErrInsufficientWaypoints):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Trip needs at least two waypoints to calculate a route"})
	case errors.Is(err, osrm.ErrNoRouteFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No route exists between these waypoints"})
	case errors.Is(err, osrm.ErrUpstreamUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Routing service is unavailable, please try again"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
