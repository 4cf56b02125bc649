// Package blip implements placing songs on the map and proximity lookups.
package blip

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// DefaultNearbyLimit caps proximity results when no limit is configured.
const DefaultNearbyLimit = 25

type blipRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Blip, error)
	List(ctx context.Context) ([]domain.Blip, error)
	Nearby(ctx context.Context, p domain.Point, limit int) ([]domain.NearbyBlip, error)
	Create(ctx context.Context, songID, userID int64, p domain.Point) (*domain.Blip, error)
}

type songRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Song, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements blip operations.
type Service struct {
	log         *slog.Logger
	blips       blipRepo
	songs       songRepo
	tx          txManager
	nearbyLimit int
}

// NewService creates a new Blip service. A non-positive nearbyLimit falls
// back to DefaultNearbyLimit.
func NewService(logger *slog.Logger, blips blipRepo, songs songRepo, tx txManager, nearbyLimit int) *Service {
	if nearbyLimit <= 0 {
		nearbyLimit = DefaultNearbyLimit
	}
	return &Service{
		log:         logger.With("service", "blip"),
		blips:       blips,
		songs:       songs,
		tx:          tx,
		nearbyLimit: nearbyLimit,
	}
}
