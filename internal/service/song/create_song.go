package song

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// Create returns the song with the given (artist, title), creating it when it
// does not exist yet. Provider metadata is looked up outside the transaction
// and a provider failure only leaves the provider fields empty.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Song, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.songs.GetByArtistTitle(ctx, input.Artist, input.Title)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("song.Create lookup: %w", err)
	}

	song := domain.Song{Artist: input.Artist, Title: input.Title}

	lookupCtx, cancel := s.lookupContext(ctx)
	meta, err := s.metadata.FetchSong(lookupCtx, input.Artist, input.Title)
	cancel()
	switch {
	case err != nil:
		s.log.WarnContext(ctx, "song provider error, storing without metadata",
			slog.String("artist", input.Artist),
			slog.String("title", input.Title),
			slog.String("error", err.Error()),
		)
	case meta != nil:
		song.Album = meta.Album
		song.ProviderKey = meta.ProviderKey
		song.ProviderSongID = meta.ProviderSongID
	}

	var (
		saved   *domain.Song
		created bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		saved, created, createErr = s.songs.Create(txCtx, song)
		return createErr
	})
	if err != nil {
		return nil, fmt.Errorf("song.Create: %w", err)
	}

	if created {
		s.log.InfoContext(ctx, "song created",
			slog.Int64("song_id", saved.ID),
			slog.String("provider_key", saved.ProviderKey),
		)
	}

	return saved, nil
}

// insertReserve is the most of the request deadline held back from the
// provider lookup for storing the song.
const insertReserve = time.Second

// lookupContext bounds the provider lookup by lookupTimeout and, when ctx has
// a deadline, ends it early enough that the insert still has time to run:
// insertReserve or half of what remains, whichever is smaller.
func (s *Service) lookupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.lookupTimeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		avail := remaining - min(insertReserve, remaining/2)
		if timeout <= 0 || avail < timeout {
			timeout = max(avail, 0)
		}
		return context.WithTimeout(ctx, timeout)
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
