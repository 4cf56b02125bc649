// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/latitune-backend/internal/adapter/postgres"
	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// columns selects a comment with its blip and the blip's song.
var columns = []string{
	"c.id", "c.blip_id", "c.user_id", "c.comment", "c.created_at",
	`b.id AS "blip.id"`,
	`b.song_id AS "blip.song_id"`,
	`b.user_id AS "blip.user_id"`,
	`b.latitude AS "blip.latitude"`,
	`b.longitude AS "blip.longitude"`,
	`b.created_at AS "blip.created_at"`,
	`s.id AS "blip.song.id"`,
	`s.artist AS "blip.song.artist"`,
	`s.title AS "blip.song.title"`,
	`s.album AS "blip.song.album"`,
	`s.provider_key AS "blip.song.provider_key"`,
	`s.provider_song_id AS "blip.song.provider_song_id"`,
}

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func selectComments() squirrel.SelectBuilder {
	return postgres.Builder.
		Select(columns...).
		From("comments c").
		Join("blips b ON b.id = c.blip_id").
		Join("songs s ON s.id = b.song_id")
}

// GetByID returns a comment with its blip.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	query, args, err := selectComments().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var c domain.Comment
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, query, args...); err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return &c, nil
}

// ListByBlip returns the comments on a blip, newest first.
func (r *Repo) ListByBlip(ctx context.Context, blipID int64) ([]domain.Comment, error) {
	query, args, err := selectComments().
		Where(squirrel.Eq{"c.blip_id": blipID}).
		OrderBy("c.created_at DESC", "c.id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	comments := []domain.Comment{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &comments, query, args...); err != nil {
		return nil, postgres.MapError(err, "comment", blipID)
	}
	return comments, nil
}

// Create stores a comment and returns it with its blip. A missing blip or
// user yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, blipID, userID int64, text string) (*domain.Comment, error) {
	query, args, err := postgres.Builder.
		Insert("comments").
		Columns("blip_id", "user_id", "comment").
		Values(blipID, userID, text).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "comment", 0)
	}

	return r.GetByID(ctx, id)
}
