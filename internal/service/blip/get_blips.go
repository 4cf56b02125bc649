package blip

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// Get returns a blip by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Blip, error) {
	b, err := s.blips.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBlipNotFound
		}
		return nil, fmt.Errorf("blip.Get: %w", err)
	}
	return b, nil
}

// List returns every blip in id order.
func (s *Service) List(ctx context.Context) ([]domain.Blip, error) {
	blips, err := s.blips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("blip.List: %w", err)
	}
	return blips, nil
}

// Nearby returns the blips closest to p, nearest first, capped at the
// configured limit.
func (s *Service) Nearby(ctx context.Context, p domain.Point) ([]domain.NearbyBlip, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	blips, err := s.blips.Nearby(ctx, p, s.nearbyLimit)
	if err != nil {
		return nil, fmt.Errorf("blip.Nearby: %w", err)
	}
	return blips, nil
}
