// File: /utils/validators.go
package utils

import (
	"strconv"
	"strings"
)

// Waypoint coordinates arrive and are stored as decimal strings. Validation
// parses a copy for the range check but never rewrites the original value.

func IsValidLatitude(lat string) bool {
	value, ok := parseCoordinate(lat)
	return ok && value >= -90 && value <= 90
}

func IsValidLongitude(lng string) bool {
	value, ok := parseCoordinate(lng)
	return ok && value >= -180 && value <= 180
}

func parseCoordinate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
