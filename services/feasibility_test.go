// File: /services/feasibility_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner-api/models"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func waypointsWithDurations(durations ...int) []models.Waypoint {
	wps := make([]models.Waypoint, 0, len(durations))
	for i, d := range durations {
		wps = append(wps, models.Waypoint{
			Name:            "Stop",
			OrderIndex:      i,
			DurationMinutes: d,
		})
	}
	return wps
}

func TestEvaluateFeasibility_Feasible(t *testing.T) {
	// One-day window = 1440 available minutes; 150 travel + 180 stops = 330 needed.
	start := datePtr(2026, 6, 1)
	end := datePtr(2026, 6, 2)

	result := EvaluateFeasibility(start, end, 150, waypointsWithDurations(60, 60, 60))

	require.NotNil(t, result.IsFeasible)
	assert.True(t, *result.IsFeasible)
	assert.Equal(t, "Trip is feasible. Total time needed: 330 min.", result.Message)
}

func TestEvaluateFeasibility_ExactFit(t *testing.T) {
	// Needed exactly equals available: still feasible.
	start := datePtr(2026, 6, 1)
	end := start.Add(330 * time.Minute)

	result := EvaluateFeasibility(start, &end, 150, waypointsWithDurations(60, 60, 60))

	require.NotNil(t, result.IsFeasible)
	assert.True(t, *result.IsFeasible)
}

func TestEvaluateFeasibility_OneMinuteOver(t *testing.T) {
	start := datePtr(2026, 6, 1)
	end := start.Add(329 * time.Minute)

	result := EvaluateFeasibility(start, &end, 150, waypointsWithDurations(60, 60, 60))

	require.NotNil(t, result.IsFeasible)
	assert.False(t, *result.IsFeasible)
	assert.Contains(t, result.Message, "Consider extending your dates.")
}

func TestEvaluateFeasibility_Infeasible(t *testing.T) {
	// Same-day window (0 available minutes), 480 travel + 150 stops needed.
	start := datePtr(2026, 6, 1)
	end := datePtr(2026, 6, 1)

	result := EvaluateFeasibility(start, end, 480, waypointsWithDurations(90, 60))

	require.NotNil(t, result.IsFeasible)
	assert.False(t, *result.IsFeasible)
	// 630 needed minutes / 600 usable per day, rounded up = 2 days.
	assert.Equal(t,
		"This trip needs approximately 2 day(s). Total travel: 480 min, stops: 150 min. Consider extending your dates.",
		result.Message)
}

func TestEvaluateFeasibility_RecommendedDaysRoundsUp(t *testing.T) {
	start := datePtr(2026, 6, 1)
	end := datePtr(2026, 6, 1)

	// 601 minutes needed is just over one usable day.
	result := EvaluateFeasibility(start, end, 601, nil)
	assert.Contains(t, result.Message, "approximately 2 day(s)")

	// Exactly one usable day.
	result = EvaluateFeasibility(start, end, 600, nil)
	assert.Contains(t, result.Message, "approximately 1 day(s)")
}

func TestEvaluateFeasibility_MissingDates(t *testing.T) {
	end := datePtr(2026, 6, 5)

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
	}{
		{"no start", nil, end},
		{"no end", datePtr(2026, 6, 1), nil},
		{"neither", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateFeasibility(tt.start, tt.end, 120, waypointsWithDurations(30))
			assert.Nil(t, result.IsFeasible)
			assert.Empty(t, result.Message)
		})
	}
}

func TestEvaluateFeasibility_InvertedWindow(t *testing.T) {
	start := datePtr(2026, 6, 10)
	end := datePtr(2026, 6, 1)

	result := EvaluateFeasibility(start, end, 60, waypointsWithDurations(30))

	require.NotNil(t, result.IsFeasible)
	assert.False(t, *result.IsFeasible)
	assert.Contains(t, result.Message, "Trip end date is before its start date.")
	assert.Contains(t, result.Message, "Consider extending your dates.")
}

func TestEvaluateFeasibility_NoWaypoints(t *testing.T) {
	start := datePtr(2026, 6, 1)
	end := datePtr(2026, 6, 3)

	result := EvaluateFeasibility(start, end, 200, nil)

	require.NotNil(t, result.IsFeasible)
	assert.True(t, *result.IsFeasible)
	assert.Equal(t, "Trip is feasible. Total time needed: 200 min.", result.Message)
}

func TestEvaluateFeasibility_IsPure(t *testing.T) {
	start := datePtr(2026, 6, 1)
	end := datePtr(2026, 6, 2)
	wps := waypointsWithDurations(45, 45)

	first := EvaluateFeasibility(start, end, 100, wps)
	second := EvaluateFeasibility(start, end, 100, wps)

	assert.Equal(t, first.Message, second.Message)
	assert.Equal(t, *first.IsFeasible, *second.IsFeasible)
}
