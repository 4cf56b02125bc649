// Package song implements de-duplicating song creation backed by an external
// metadata provider.
package song

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/latitune-backend/internal/domain"
	"github.com/heartmarshall/latitune-backend/internal/provider"
)

type songRepo interface {
	GetByArtistTitle(ctx context.Context, artist, title string) (*domain.Song, error)
	Create(ctx context.Context, s domain.Song) (*domain.Song, bool, error)
}

type metadataProvider interface {
	FetchSong(ctx context.Context, artist, title string) (*provider.SongMetadata, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements song operations.
type Service struct {
	log      *slog.Logger
	songs    songRepo
	tx       txManager
	metadata metadataProvider
	// lookupTimeout bounds one provider lookup. Zero leaves it bounded only
	// by the request deadline.
	lookupTimeout time.Duration
}

// NewService creates a new Song service.
func NewService(logger *slog.Logger, songs songRepo, tx txManager, metadata metadataProvider, lookupTimeout time.Duration) *Service {
	return &Service{
		log:           logger.With("service", "song"),
		songs:         songs,
		tx:            tx,
		metadata:      metadata,
		lookupTimeout: lookupTimeout,
	}
}
