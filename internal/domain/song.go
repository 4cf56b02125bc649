package domain

// ProviderYouTube is the provider key stored for songs resolved via YouTube.
const ProviderYouTube = "Youtube"

// Song is a track identified by its (artist, title) pair.
type Song struct {
	ID             int64  `db:"id"`
	Artist         string `db:"artist"`
	Title          string `db:"title"`
	Album          string `db:"album"`
	ProviderKey    string `db:"provider_key"`
	ProviderSongID string `db:"provider_song_id"`
}
