package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// Plaintext answers of the schema reset endpoint.
const (
	resetOK      = "OK"
	resetRefusal = "WHO DO YOU THINK YOU ARE?"
)

type adminService interface {
	ResetSchema(ctx context.Context) error
}

// AdminHandler serves development-only endpoints.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

// Reset handles GET /api/tabularasa. It answers in plaintext rather than
// with an envelope.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	err := h.svc.ResetSchema(r.Context())
	switch {
	case err == nil:
		_, _ = w.Write([]byte(resetOK))
	case errors.Is(err, domain.ErrForbidden):
		_, _ = w.Write([]byte(resetRefusal))
	default:
		h.log.ErrorContext(r.Context(), "schema reset failed", slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
