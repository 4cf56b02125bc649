package domain

import "time"

// Blip pins a song to a geographic point on behalf of a user.
// Song is populated by the repository from the songs table.
type Blip struct {
	ID        int64     `db:"id"`
	SongID    int64     `db:"song_id"`
	UserID    int64     `db:"user_id"`
	Latitude  float64   `db:"latitude"`
	Longitude float64   `db:"longitude"`
	CreatedAt time.Time `db:"created_at"`

	Song Song `db:"song"`
}

// Point returns the blip's coordinate.
func (b Blip) Point() Point {
	return Point{Latitude: b.Latitude, Longitude: b.Longitude}
}

// NearbyBlip is a blip annotated with its distance in miles from a query point.
type NearbyBlip struct {
	Blip
	Distance float64 `db:"distance"`
}
