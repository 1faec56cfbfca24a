// File: /services/errors.go
package services

import "errors"

var (
	ErrTripNotFound          = errors.New("trip not found")
	ErrRouteNotFound         = errors.New("no route has been calculated for this trip")
	ErrInsufficientWaypoints = errors.New("trip needs at least two waypoints to calculate a route")
)
