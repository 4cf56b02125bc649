// Package favorite implements user bookmarks of blips.
package favorite

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

type favoriteRepo interface {
	Create(ctx context.Context, userID, blipID int64) (*domain.Favorite, bool, error)
	Delete(ctx context.Context, userID, blipID int64) error
	UsersByBlip(ctx context.Context, blipID int64) ([]domain.User, error)
	BlipsByUser(ctx context.Context, userID int64) ([]domain.Blip, error)
}

type blipRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Blip, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements favorite operations.
type Service struct {
	log       *slog.Logger
	favorites favoriteRepo
	blips     blipRepo
	tx        txManager
}

// NewService creates a new Favorite service.
func NewService(logger *slog.Logger, favorites favoriteRepo, blips blipRepo, tx txManager) *Service {
	return &Service{
		log:       logger.With("service", "favorite"),
		favorites: favorites,
		blips:     blips,
		tx:        tx,
	}
}
