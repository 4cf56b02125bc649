package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/latitune-backend/internal/domain"
	"github.com/heartmarshall/latitune-backend/internal/service/comment"
	"github.com/heartmarshall/latitune-backend/internal/transport/middleware"
	"github.com/heartmarshall/latitune-backend/pkg/ctxutil"
)

type commentService interface {
	Create(ctx context.Context, input comment.CreateInput) (*domain.Comment, error)
	Get(ctx context.Context, id int64) (*domain.Comment, error)
	ListByBlip(ctx context.Context, blipID int64) ([]domain.Comment, error)
}

// CommentHandler serves /api/blip/comment.
type CommentHandler struct {
	svc  commentService
	fail middleware.ErrorWriter
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, fail: ErrorWriter(logger.With("handler", "comment"))}
}

// Create handles PUT /api/blip/comment for the authenticated user.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		h.fail(w, r, domain.ErrUnauthorized)
		return
	}

	blipID, err := int64Param(r, "blip_id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), comment.CreateInput{
		BlipID: blipID,
		UserID: userID,
		Text:   param(r, "comment"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeObject(w, toCommentResponse(*c))
}

// Get handles GET /api/blip/comment by id, or by blip_id newest first.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	switch {
	case middleware.Has(r, "id"):
		id, err := int64Param(r, "id")
		if err != nil {
			h.fail(w, r, err)
			return
		}
		c, err := h.svc.Get(r.Context(), id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeObject(w, toCommentResponse(*c))

	case middleware.Has(r, "blip_id"):
		blipID, err := int64Param(r, "blip_id")
		if err != nil {
			h.fail(w, r, err)
			return
		}
		comments, err := h.svc.ListByBlip(r.Context(), blipID)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeObjects(w, mapSlice(comments, toCommentResponse))

	default:
		h.fail(w, r, fmt.Errorf("id or blip_id: %w", domain.ErrMissingParameter))
	}
}
