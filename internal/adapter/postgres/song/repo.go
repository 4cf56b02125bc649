// Package song implements the Song repository using PostgreSQL.
package song

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/latitune-backend/internal/adapter/postgres"
	"github.com/heartmarshall/latitune-backend/internal/domain"
)

var columns = []string{"id", "artist", "title", "album", "provider_key", "provider_song_id"}

// Repo provides song persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new song repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a song by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Song, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByArtistTitle returns the song identified by the (artist, title) pair.
func (r *Repo) GetByArtistTitle(ctx context.Context, artist, title string) (*domain.Song, error) {
	return r.getOne(ctx, squirrel.Eq{"artist": artist, "title": title}, artist+" - "+title)
}

// Create inserts s unless a song with the same artist and title exists.
// The stored row is returned either way; created reports whether it is new.
func (r *Repo) Create(ctx context.Context, s domain.Song) (song *domain.Song, created bool, err error) {
	query, args, err := postgres.Builder.
		Insert("songs").
		Columns("artist", "title", "album", "provider_key", "provider_song_id").
		Values(s.Artist, s.Title, s.Album, s.ProviderKey, s.ProviderSongID).
		Suffix("ON CONFLICT (artist, title) DO NOTHING RETURNING id, artist, title, album, provider_key, provider_song_id").
		ToSql()
	if err != nil {
		return nil, false, err
	}

	var inserted domain.Song
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &inserted, query, args...)
	if err == nil {
		return &inserted, true, nil
	}

	if !postgres.IsNoRows(err) {
		return nil, false, postgres.MapError(err, "song", s.Artist+" - "+s.Title)
	}

	// Conflict: the pair already exists.
	existing, err := r.GetByArtistTitle(ctx, s.Artist, s.Title)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, key any) (*domain.Song, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("songs").
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	var s domain.Song
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, query, args...); err != nil {
		return nil, postgres.MapError(err, "song", key)
	}
	return &s, nil
}
