// Package comment implements remarks left on blips.
package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// MaxCommentLength bounds a single comment in characters.
const MaxCommentLength = 4000

type commentRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	ListByBlip(ctx context.Context, blipID int64) ([]domain.Comment, error)
	Create(ctx context.Context, blipID, userID int64, text string) (*domain.Comment, error)
}

type blipRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Blip, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements comment operations.
type Service struct {
	log      *slog.Logger
	comments commentRepo
	blips    blipRepo
	tx       txManager
}

// NewService creates a new Comment service.
func NewService(logger *slog.Logger, comments commentRepo, blips blipRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "comment"),
		comments: comments,
		blips:    blips,
		tx:       tx,
	}
}

// CreateInput holds parameters for commenting on a blip.
type CreateInput struct {
	BlipID int64
	UserID int64
	Text   string
}

// Validate checks the comment length.
func (i CreateInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.Text, validation.RuneLength(0, MaxCommentLength)),
	))
}

// Create adds a comment to a blip. An unknown blip yields
// domain.ErrBlipNotFound.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.blips.GetByID(txCtx, input.BlipID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrBlipNotFound
			}
			return err
		}

		c, err := s.comments.Create(txCtx, input.BlipID, input.UserID, input.Text)
		if err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrBlipNotFound) {
			return nil, domain.ErrBlipNotFound
		}
		return nil, fmt.Errorf("comment.Create: %w", err)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.Int64("comment_id", created.ID),
		slog.Int64("blip_id", created.BlipID),
	)

	return created, nil
}

// Get returns a comment by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("comment.Get: %w", err)
	}
	return c, nil
}

// ListByBlip returns the comments on a blip, newest first. An unknown blip
// has no comments.
func (s *Service) ListByBlip(ctx context.Context, blipID int64) ([]domain.Comment, error) {
	comments, err := s.comments.ListByBlip(ctx, blipID)
	if err != nil {
		return nil, fmt.Errorf("comment.ListByBlip: %w", err)
	}
	return comments, nil
}
