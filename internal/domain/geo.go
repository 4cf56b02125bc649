package domain

import (
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EarthRadiusMiles is the spherical-earth radius used for blip proximity.
const EarthRadiusMiles = 3959.0

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Validate rejects coordinates outside [-90, 90] latitude and
// [-180, 180] longitude with a *ValidationError.
func (p Point) Validate() error {
	return FromValidation(validation.ValidateStruct(&p,
		validation.Field(&p.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&p.Longitude, validation.Min(-180.0), validation.Max(180.0)),
	))
}

// Distance returns the great-circle distance in miles between a and b using
// the spherical law of cosines. It is the Go twin of the SQL expression used
// by the blip repository, so both must be kept in sync.
func Distance(a, b Point) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	cos := math.Cos(lat1)*math.Cos(lat2)*math.Cos(dLon) + math.Sin(lat1)*math.Sin(lat2)
	// Rounding can push identical points slightly above 1.
	cos = math.Max(-1, math.Min(1, cos))

	return EarthRadiusMiles * math.Acos(cos)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
