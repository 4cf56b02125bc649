package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/latitune-backend/internal/domain"
	"github.com/heartmarshall/latitune-backend/internal/service/song"
	"github.com/heartmarshall/latitune-backend/internal/transport/middleware"
)

type songService interface {
	Create(ctx context.Context, input song.CreateInput) (*domain.Song, error)
}

// SongHandler serves /api/song.
type SongHandler struct {
	svc  songService
	fail middleware.ErrorWriter
}

// NewSongHandler creates a SongHandler.
func NewSongHandler(svc songService, logger *slog.Logger) *SongHandler {
	return &SongHandler{svc: svc, fail: ErrorWriter(logger.With("handler", "song"))}
}

// Create handles PUT /api/song. An existing (artist, title) pair is returned
// unchanged.
func (h *SongHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Create(r.Context(), song.CreateInput{
		Artist: param(r, "artist"),
		Title:  param(r, "title"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeObject(w, toSongResponse(*s))
}
