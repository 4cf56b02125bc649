package rest

import (
	"time"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// timestampLayout renders RFC 3339 timestamps with up to microsecond
// precision, the resolution PostgreSQL stores. Trailing zero digits are
// dropped.
const timestampLayout = "2006-01-02T15:04:05.999999Z07:00"

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type songResponse struct {
	ID             int64  `json:"id"`
	Artist         string `json:"artist"`
	Title          string `json:"title"`
	Album          string `json:"album"`
	ProviderKey    string `json:"provider_key"`
	ProviderSongID string `json:"provider_song_id"`
}

type blipResponse struct {
	ID        int64        `json:"id"`
	Song      songResponse `json:"song"`
	UserID    int64        `json:"user_id"`
	Longitude float64      `json:"longitude"`
	Latitude  float64      `json:"latitude"`
	Timestamp string       `json:"timestamp"`
}

type commentResponse struct {
	ID        int64        `json:"id"`
	Blip      blipResponse `json:"blip"`
	UserID    int64        `json:"user_id"`
	Comment   string       `json:"comment"`
	Timestamp string       `json:"timestamp"`
}

type favoriteResponse struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	BlipID int64 `json:"blip_id"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toSongResponse(s domain.Song) songResponse {
	return songResponse{
		ID:             s.ID,
		Artist:         s.Artist,
		Title:          s.Title,
		Album:          s.Album,
		ProviderKey:    s.ProviderKey,
		ProviderSongID: s.ProviderSongID,
	}
}

func toBlipResponse(b domain.Blip) blipResponse {
	return blipResponse{
		ID:        b.ID,
		Song:      toSongResponse(b.Song),
		UserID:    b.UserID,
		Longitude: b.Longitude,
		Latitude:  b.Latitude,
		Timestamp: formatTimestamp(b.CreatedAt),
	}
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		Blip:      toBlipResponse(c.Blip),
		UserID:    c.UserID,
		Comment:   c.Text,
		Timestamp: formatTimestamp(c.CreatedAt),
	}
}

func toFavoriteResponse(f domain.Favorite) favoriteResponse {
	return favoriteResponse{ID: f.ID, UserID: f.UserID, BlipID: f.BlipID}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i := range in {
		out[i] = fn(in[i])
	}
	return out
}
