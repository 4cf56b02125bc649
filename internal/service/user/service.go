// Package user implements account registration, lookup and password
// authentication.
package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
}

// passwordHasher hashes and verifies passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	hasher passwordHasher
	tx     txManager
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, hasher passwordHasher, tx txManager) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		hasher: hasher,
		tx:     tx,
	}
}
