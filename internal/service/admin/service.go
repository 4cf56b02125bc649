// Package admin implements development-only maintenance operations.
package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

type schemaResetter interface {
	Reset(ctx context.Context) error
}

// Service implements maintenance operations. Every operation is refused
// unless the process runs in local development mode.
type Service struct {
	log    *slog.Logger
	schema schemaResetter
	local  bool
}

// NewService creates a new Admin service.
func NewService(logger *slog.Logger, schema schemaResetter, local bool) *Service {
	return &Service{
		log:    logger.With("service", "admin"),
		schema: schema,
		local:  local,
	}
}

// ResetSchema drops every table and recreates the schema from the embedded
// migrations. Outside local mode it returns domain.ErrForbidden without
// touching the store.
func (s *Service) ResetSchema(ctx context.Context) error {
	if !s.local {
		s.log.WarnContext(ctx, "schema reset refused outside local mode")
		return domain.ErrForbidden
	}

	if err := s.schema.Reset(ctx); err != nil {
		return fmt.Errorf("admin.ResetSchema: %w", err)
	}

	s.log.WarnContext(ctx, "schema reset")
	return nil
}
