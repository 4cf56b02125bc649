package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/latitune-backend/internal/domain"
	"github.com/heartmarshall/latitune-backend/internal/transport/middleware"
	"github.com/heartmarshall/latitune-backend/pkg/ctxutil"
)

type favoriteService interface {
	Create(ctx context.Context, userID, blipID int64) (*domain.Favorite, error)
	Delete(ctx context.Context, userID, blipID int64) error
	UsersByBlip(ctx context.Context, blipID int64) ([]domain.User, error)
	BlipsByUser(ctx context.Context, userID int64) ([]domain.Blip, error)
}

// FavoriteHandler serves /api/blip/favorite.
type FavoriteHandler struct {
	svc  favoriteService
	fail middleware.ErrorWriter
}

// NewFavoriteHandler creates a FavoriteHandler.
func NewFavoriteHandler(svc favoriteService, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{svc: svc, fail: ErrorWriter(logger.With("handler", "favorite"))}
}

// Create handles PUT /api/blip/favorite. Repeating it returns the existing
// favorite.
func (h *FavoriteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, blipID, ok := h.target(w, r)
	if !ok {
		return
	}

	f, err := h.svc.Create(r.Context(), userID, blipID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeObject(w, toFavoriteResponse(*f))
}

// Delete handles DELETE /api/blip/favorite and answers an empty success.
func (h *FavoriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, blipID, ok := h.target(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, blipID); err != nil {
		h.fail(w, r, err)
		return
	}

	writeStatus(w, StatusSuccess)
}

// List handles GET /api/blip/favorite. user_id lists the user's favorite
// blips by ascending id and wins over blip_id, which lists the users who
// favorited a blip by descending id.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	switch {
	case middleware.Has(r, "user_id"):
		userID, err := int64Param(r, "user_id")
		if err != nil {
			h.fail(w, r, err)
			return
		}
		blips, err := h.svc.BlipsByUser(r.Context(), userID)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeObjects(w, mapSlice(blips, toBlipResponse))

	case middleware.Has(r, "blip_id"):
		blipID, err := int64Param(r, "blip_id")
		if err != nil {
			h.fail(w, r, err)
			return
		}
		users, err := h.svc.UsersByBlip(r.Context(), blipID)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeObjects(w, mapSlice(users, toUserResponse))

	default:
		h.fail(w, r, fmt.Errorf("user_id or blip_id: %w", domain.ErrMissingParameter))
	}
}

// target returns the authenticated user and the blip_id parameter.
func (h *FavoriteHandler) target(w http.ResponseWriter, r *http.Request) (userID, blipID int64, ok bool) {
	userID, ok = ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		h.fail(w, r, domain.ErrUnauthorized)
		return 0, 0, false
	}

	blipID, err := int64Param(r, "blip_id")
	if err != nil {
		h.fail(w, r, err)
		return 0, 0, false
	}
	return userID, blipID, true
}
