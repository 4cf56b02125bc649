package blip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// Create places a song at a point on behalf of a user.
// An unknown song yields domain.ErrSongNotFound.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Blip, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Blip
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.songs.GetByID(txCtx, input.SongID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrSongNotFound
			}
			return err
		}

		b, err := s.blips.Create(txCtx, input.SongID, input.UserID, input.Point())
		if err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrSongNotFound) {
			return nil, domain.ErrSongNotFound
		}
		return nil, fmt.Errorf("blip.Create: %w", err)
	}

	s.log.InfoContext(ctx, "blip created",
		slog.Int64("blip_id", created.ID),
		slog.Int64("song_id", created.SongID),
		slog.Int64("user_id", created.UserID),
	)

	return created, nil
}
