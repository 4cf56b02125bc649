package rest

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/latitune-backend/internal/domain"
	"github.com/heartmarshall/latitune-backend/internal/transport/middleware"
)

// param returns the first value of name.
func param(r *http.Request, name string) string {
	return middleware.Values(r).Get(name)
}

// int64Param parses name as a decimal id. A present but unparsable value is
// a validation error.
func int64Param(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(param(r, name)), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return v, nil
}

// float64Param parses name as a finite decimal number.
func float64Param(r *http.Request, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(param(r, name)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.NewValidationError(name, "must be a number")
	}
	return v, nil
}

// pointParams parses the latitude and longitude parameters.
func pointParams(r *http.Request) (domain.Point, error) {
	lat, err := float64Param(r, "latitude")
	if err != nil {
		return domain.Point{}, err
	}
	lon, err := float64Param(r, "longitude")
	if err != nil {
		return domain.Point{}, err
	}
	return domain.Point{Latitude: lat, Longitude: lon}, nil
}
