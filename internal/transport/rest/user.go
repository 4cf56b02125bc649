package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/latitune-backend/internal/domain"
	"github.com/heartmarshall/latitune-backend/internal/service/user"
	"github.com/heartmarshall/latitune-backend/internal/transport/middleware"
	"github.com/heartmarshall/latitune-backend/pkg/ctxutil"
)

type userService interface {
	Register(ctx context.Context, input user.RegisterInput) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
}

// UserHandler serves /api/user.
type UserHandler struct {
	svc  userService
	fail middleware.ErrorWriter
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, fail: ErrorWriter(logger.With("handler", "user"))}
}

// Create handles PUT /api/user.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Register(r.Context(), user.RegisterInput{
		Username: param(r, "username"),
		Email:    param(r, "email"),
		Password: param(r, "password"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeObject(w, toUserResponse(*u))
}

// Get handles GET /api/user and returns the authenticated user.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		h.fail(w, r, domain.ErrUnauthorized)
		return
	}

	u, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeObject(w, toUserResponse(*u))
}
