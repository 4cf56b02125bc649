package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/latitune-backend/internal/domain"
	"github.com/heartmarshall/latitune-backend/internal/service/blip"
	"github.com/heartmarshall/latitune-backend/internal/transport/middleware"
	"github.com/heartmarshall/latitune-backend/pkg/ctxutil"
)

type blipService interface {
	Create(ctx context.Context, input blip.CreateInput) (*domain.Blip, error)
	Get(ctx context.Context, id int64) (*domain.Blip, error)
	List(ctx context.Context) ([]domain.Blip, error)
	Nearby(ctx context.Context, p domain.Point) ([]domain.NearbyBlip, error)
}

// BlipHandler serves /api/blip.
type BlipHandler struct {
	svc  blipService
	fail middleware.ErrorWriter
}

// NewBlipHandler creates a BlipHandler.
func NewBlipHandler(svc blipService, logger *slog.Logger) *BlipHandler {
	return &BlipHandler{svc: svc, fail: ErrorWriter(logger.With("handler", "blip"))}
}

// Get handles GET /api/blip. Modes are checked in order: latitude and
// longitude select the nearest blips, id selects one blip, otherwise every
// blip is returned.
func (h *BlipHandler) Get(w http.ResponseWriter, r *http.Request) {
	switch {
	case middleware.Has(r, "latitude") && middleware.Has(r, "longitude"):
		p, err := pointParams(r)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		nearby, err := h.svc.Nearby(r.Context(), p)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeObjects(w, mapSlice(nearby, func(n domain.NearbyBlip) blipResponse {
			return toBlipResponse(n.Blip)
		}))

	case middleware.Has(r, "id"):
		id, err := int64Param(r, "id")
		if err != nil {
			h.fail(w, r, err)
			return
		}
		b, err := h.svc.Get(r.Context(), id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeObject(w, toBlipResponse(*b))

	default:
		blips, err := h.svc.List(r.Context())
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeObjects(w, mapSlice(blips, toBlipResponse))
	}
}

// Create handles PUT /api/blip for the authenticated user.
func (h *BlipHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		h.fail(w, r, domain.ErrUnauthorized)
		return
	}

	songID, err := int64Param(r, "song_id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := pointParams(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	b, err := h.svc.Create(r.Context(), blip.CreateInput{
		SongID:    songID,
		UserID:    userID,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeObject(w, toBlipResponse(*b))
}
