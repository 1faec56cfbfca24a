// File: /services/feasibility.go
package services

import (
	"fmt"
	"time"

	"tripplanner-api/models"
)

// usableMinutesPerDay is how much of a day a traveler can realistically
// spend traveling and visiting stops (10 hours).
const usableMinutesPerDay = 10 * 60

// Feasibility is the verdict on whether a trip's date window leaves enough
// time for travel plus planned stop durations. IsFeasible is nil when the
// trip has no complete date window to judge against.
type Feasibility struct {
	IsFeasible *bool  `json:"is_feasible"`
	Message    string `json:"message"`
}

// EvaluateFeasibility compares the time a trip needs (travel duration plus
// the sum of waypoint dwell times) against the trip's date window. It is
// pure: no clock reads, no I/O. An inverted date window (end before start)
// is infeasible, not an error.
func EvaluateFeasibility(startDate, endDate *time.Time, travelDurationMinutes int, waypoints []models.Waypoint) Feasibility {
	if startDate == nil || endDate == nil {
		return Feasibility{}
	}

	availableMinutes := int(endDate.Sub(*startDate).Minutes())

	visitMinutes := 0
	for _, wp := range waypoints {
		visitMinutes += wp.DurationMinutes
	}

	neededMinutes := travelDurationMinutes + visitMinutes
	feasible := neededMinutes <= availableMinutes

	if feasible {
		return Feasibility{
			IsFeasible: &feasible,
			Message:    fmt.Sprintf("Trip is feasible. Total time needed: %d min.", neededMinutes),
		}
	}

	recommendedDays := (neededMinutes + usableMinutesPerDay - 1) / usableMinutesPerDay
	message := fmt.Sprintf(
		"This trip needs approximately %d day(s). Total travel: %d min, stops: %d min. Consider extending your dates.",
		recommendedDays, travelDurationMinutes, visitMinutes,
	)
	if availableMinutes < 0 {
		message = "Trip end date is before its start date. " + message
	}

	return Feasibility{IsFeasible: &feasible, Message: message}
}
