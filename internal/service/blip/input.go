package blip

import "github.com/heartmarshall/latitune-backend/internal/domain"

// CreateInput holds parameters for placing a blip.
type CreateInput struct {
	SongID    int64
	UserID    int64
	Latitude  float64
	Longitude float64
}

// Point returns the blip location.
func (i CreateInput) Point() domain.Point {
	return domain.Point{Latitude: i.Latitude, Longitude: i.Longitude}
}

// Validate checks the coordinate ranges. Song existence is checked against
// the store.
func (i CreateInput) Validate() error {
	return i.Point().Validate()
}
