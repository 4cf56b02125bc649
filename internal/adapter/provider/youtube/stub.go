package youtube

import (
	"context"

	"github.com/heartmarshall/latitune-backend/internal/provider"
)

// Stub is a no-op song provider used when no YouTube API key is configured.
type Stub struct{}

// NewStub creates a new no-op song provider.
func NewStub() *Stub { return &Stub{} }

// FetchSong always returns nil: songs are stored without provider metadata.
func (s *Stub) FetchSong(ctx context.Context, artist, title string) (*provider.SongMetadata, error) {
	return nil, nil
}
