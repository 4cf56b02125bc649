// Package blip implements the Blip repository using PostgreSQL, including
// the great-circle proximity query.
package blip

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/latitune-backend/internal/adapter/postgres"
	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// Columns selects a blip joined with its song (aliases b and s). Nested song
// columns use the "song." prefix so scany fills domain.Blip.Song.
var Columns = []string{
	"b.id", "b.song_id", "b.user_id", "b.latitude", "b.longitude", "b.created_at",
	`s.id AS "song.id"`,
	`s.artist AS "song.artist"`,
	`s.title AS "song.title"`,
	`s.album AS "song.album"`,
	`s.provider_key AS "song.provider_key"`,
	`s.provider_song_id AS "song.provider_song_id"`,
}

// distanceSQL is the spherical law of cosines in miles. Arguments are the
// query latitude, longitude and latitude again. The acos argument is clamped
// so that a blip at the query point yields 0 instead of NaN. domain.Distance
// computes the same value in Go.
const distanceSQL = `3959 * acos(LEAST(1.0, GREATEST(-1.0,
	cos(radians(?)) * cos(radians(b.latitude)) * cos(radians(b.longitude) - radians(?))
	+ sin(radians(?)) * sin(radians(b.latitude)))))`

// Repo provides blip persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new blip repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func selectBlips() squirrel.SelectBuilder {
	return postgres.Builder.
		Select(Columns...).
		From("blips b").
		Join("songs s ON s.id = b.song_id")
}

// GetByID returns a blip with its song.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Blip, error) {
	query, args, err := selectBlips().Where(squirrel.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var b domain.Blip
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &b, query, args...); err != nil {
		return nil, postgres.MapError(err, "blip", id)
	}
	return &b, nil
}

// List returns every blip ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Blip, error) {
	query, args, err := selectBlips().OrderBy("b.id ASC").ToSql()
	if err != nil {
		return nil, err
	}

	blips := []domain.Blip{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &blips, query, args...); err != nil {
		return nil, postgres.MapError(err, "blip", "all")
	}
	return blips, nil
}

// Nearby returns at most limit blips ordered by ascending distance from p.
// Ties are broken by id so results are stable.
func (r *Repo) Nearby(ctx context.Context, p domain.Point, limit int) ([]domain.NearbyBlip, error) {
	query, args, err := selectBlips().
		Column(squirrel.Alias(squirrel.Expr(distanceSQL, p.Latitude, p.Longitude, p.Latitude), "distance")).
		OrderBy("distance ASC", "b.id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	blips := []domain.NearbyBlip{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &blips, query, args...); err != nil {
		return nil, postgres.MapError(err, "blip", "nearby")
	}
	return blips, nil
}

// Create inserts a blip stamped with the current time and returns it with its
// song. A missing song or user yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, songID, userID int64, p domain.Point) (*domain.Blip, error) {
	query, args, err := postgres.Builder.
		Insert("blips").
		Columns("song_id", "user_id", "latitude", "longitude").
		Values(songID, userID, p.Latitude, p.Longitude).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "blip", 0)
	}

	return r.GetByID(ctx, id)
}
