package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// Authenticate resolves credentials to a user.
//
// user_id takes precedence over username. An unknown or unparsable user_id
// and a wrong password both yield domain.ErrInvalidCredential; an unknown
// username yields domain.ErrUsernameNotFound.
func (s *Service) Authenticate(ctx context.Context, c Credentials) (*domain.User, error) {
	var (
		u   *domain.User
		err error
	)

	switch {
	case c.UserID != nil:
		id, perr := strconv.ParseInt(strings.TrimSpace(*c.UserID), 10, 64)
		if perr != nil {
			return nil, domain.ErrInvalidCredential
		}
		u, err = s.users.GetByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredential
		}
	case c.Username != nil:
		u, err = s.users.GetByName(ctx, *c.Username)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUsernameNotFound
		}
	default:
		return nil, fmt.Errorf("user_id or username: %w", domain.ErrMissingParameter)
	}
	if err != nil {
		return nil, fmt.Errorf("user.Authenticate: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, c.Password); err != nil {
		return nil, domain.ErrInvalidCredential
	}

	return u, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return u, nil
}
