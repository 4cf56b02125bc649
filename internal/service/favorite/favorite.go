package favorite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// Create bookmarks a blip for a user. Repeating the call returns the
// existing favorite. An unknown blip yields domain.ErrBlipNotFound.
func (s *Service) Create(ctx context.Context, userID, blipID int64) (*domain.Favorite, error) {
	var (
		fav     *domain.Favorite
		created bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.blips.GetByID(txCtx, blipID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrBlipNotFound
			}
			return err
		}

		var err error
		fav, created, err = s.favorites.Create(txCtx, userID, blipID)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrBlipNotFound) {
			return nil, domain.ErrBlipNotFound
		}
		return nil, fmt.Errorf("favorite.Create: %w", err)
	}

	if created {
		s.log.InfoContext(ctx, "favorite created",
			slog.Int64("user_id", userID),
			slog.Int64("blip_id", blipID),
		)
	}

	return fav, nil
}

// Delete removes a user's bookmark of a blip. A missing bookmark yields
// domain.ErrFavoriteNotFound.
func (s *Service) Delete(ctx context.Context, userID, blipID int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.favorites.Delete(txCtx, userID, blipID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrFavoriteNotFound
		}
		return fmt.Errorf("favorite.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "favorite deleted",
		slog.Int64("user_id", userID),
		slog.Int64("blip_id", blipID),
	)

	return nil
}

// UsersByBlip returns the users who bookmarked a blip, highest user id first.
func (s *Service) UsersByBlip(ctx context.Context, blipID int64) ([]domain.User, error) {
	users, err := s.favorites.UsersByBlip(ctx, blipID)
	if err != nil {
		return nil, fmt.Errorf("favorite.UsersByBlip: %w", err)
	}
	return users, nil
}

// BlipsByUser returns the blips a user bookmarked, lowest blip id first.
func (s *Service) BlipsByUser(ctx context.Context, userID int64) ([]domain.Blip, error) {
	blips, err := s.favorites.BlipsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("favorite.BlipsByUser: %w", err)
	}
	return blips, nil
}
