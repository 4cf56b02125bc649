// Package favorite implements the Favorite repository using PostgreSQL.
package favorite

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/latitune-backend/internal/adapter/postgres"
	"github.com/heartmarshall/latitune-backend/internal/adapter/postgres/blip"
	"github.com/heartmarshall/latitune-backend/internal/domain"
)

var columns = []string{"id", "user_id", "blip_id"}

// Repo provides favorite persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new favorite repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func key(userID, blipID int64) string {
	return fmt.Sprintf("user=%d blip=%d", userID, blipID)
}

// Get returns the favorite for the (user, blip) pair.
func (r *Repo) Get(ctx context.Context, userID, blipID int64) (*domain.Favorite, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("favorites").
		Where(squirrel.Eq{"user_id": userID, "blip_id": blipID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var f domain.Favorite
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &f, query, args...); err != nil {
		return nil, postgres.MapError(err, "favorite", key(userID, blipID))
	}
	return &f, nil
}

// Create stores a favorite unless the pair is already favorited, in which
// case the existing row is returned and created is false.
func (r *Repo) Create(ctx context.Context, userID, blipID int64) (fav *domain.Favorite, created bool, err error) {
	query, args, err := postgres.Builder.
		Insert("favorites").
		Columns("user_id", "blip_id").
		Values(userID, blipID).
		Suffix("ON CONFLICT (user_id, blip_id) DO NOTHING RETURNING id, user_id, blip_id").
		ToSql()
	if err != nil {
		return nil, false, err
	}

	var f domain.Favorite
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &f, query, args...)
	if err == nil {
		return &f, true, nil
	}

	if !postgres.IsNoRows(err) {
		return nil, false, postgres.MapError(err, "favorite", key(userID, blipID))
	}

	// Conflict: the pair is already favorited.

	existing, err := r.Get(ctx, userID, blipID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// Delete removes the favorite for the (user, blip) pair.
// Returns domain.ErrNotFound when no such favorite exists.
func (r *Repo) Delete(ctx context.Context, userID, blipID int64) error {
	query, args, err := postgres.Builder.
		Delete("favorites").
		Where(squirrel.Eq{"user_id": userID, "blip_id": blipID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "favorite", key(userID, blipID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("favorite %s: %w", key(userID, blipID), domain.ErrNotFound)
	}
	return nil
}

// UsersByBlip returns the users who favorited a blip, highest id first.
func (r *Repo) UsersByBlip(ctx context.Context, blipID int64) ([]domain.User, error) {
	query, args, err := postgres.Builder.
		Select("u.id", "u.name", "u.email", "u.pw_hash", "u.created_at").
		From("favorites f").
		Join("users u ON u.id = f.user_id").
		Where(squirrel.Eq{"f.blip_id": blipID}).
		OrderBy("u.id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	users := []domain.User{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &users, query, args...); err != nil {
		return nil, postgres.MapError(err, "favorite", blipID)
	}
	return users, nil
}

// BlipsByUser returns the blips a user favorited, lowest id first.
func (r *Repo) BlipsByUser(ctx context.Context, userID int64) ([]domain.Blip, error) {
	query, args, err := postgres.Builder.
		Select(blip.Columns...).
		From("favorites f").
		Join("blips b ON b.id = f.blip_id").
		Join("songs s ON s.id = b.song_id").
		Where(squirrel.Eq{"f.user_id": userID}).
		OrderBy("b.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	blips := []domain.Blip{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &blips, query, args...); err != nil {
		return nil, postgres.MapError(err, "favorite", userID)
	}
	return blips, nil
}
