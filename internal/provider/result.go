// Package provider holds the result types returned by external metadata
// providers, independent of any concrete adapter.
package provider

// SongMetadata identifies a song on an external media provider.
type SongMetadata struct {
	ProviderKey    string
	ProviderSongID string
	Album          string
}
