package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// Register creates a user with a hashed password.
// A duplicate email yields domain.ErrEmailTaken; otherwise a duplicate name
// yields domain.ErrUsernameTaken. Email is checked first when both collide.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.Create(txCtx, input.Username, input.Email, hash)
		if err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, s.classifyConflict(ctx, input)
		}
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.Int64("user_id", created.ID))

	return created, nil
}

// classifyConflict runs after the failed transaction has rolled back and
// reports which unique column collided.
func (s *Service) classifyConflict(ctx context.Context, input RegisterInput) error {
	_, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("user.Register classify email: %w", err)
	}

	_, err = s.users.GetByName(ctx, input.Username)
	switch {
	case err == nil:
		return domain.ErrUsernameTaken
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("user.Register classify username: %w", err)
	}

	// The conflicting row vanished between the insert and the lookups.
	return fmt.Errorf("user.Register: %w", domain.ErrConflict)
}
