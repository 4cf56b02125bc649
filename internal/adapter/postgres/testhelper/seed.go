package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueName returns prefix with a short random suffix.
func UniqueName(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedUser inserts a user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	name := UniqueName("user")
	u := domain.User{Name: name, Email: name + "@example.com", PasswordHash: "$2a$04$placeholder"}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (name, email, pw_hash) VALUES ($1, $2, $3) RETURNING id, created_at`,
		u.Name, u.Email, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedSong inserts a song with a unique artist/title pair.
func SeedSong(t *testing.T, pool *pgxpool.Pool) domain.Song {
	t.Helper()

	s := domain.Song{Artist: UniqueName("artist"), Title: UniqueName("title")}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO songs (artist, title) VALUES ($1, $2) RETURNING id`,
		s.Artist, s.Title,
	).Scan(&s.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedSong: %v", err)
	}
	return s
}

// SeedBlip inserts a blip for song and user at p.
func SeedBlip(t *testing.T, pool *pgxpool.Pool, song domain.Song, userID int64, p domain.Point) domain.Blip {
	t.Helper()

	b := domain.Blip{SongID: song.ID, UserID: userID, Latitude: p.Latitude, Longitude: p.Longitude, Song: song}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO blips (song_id, user_id, latitude, longitude) VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		b.SongID, b.UserID, b.Latitude, b.Longitude,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedBlip: %v", err)
	}
	return b
}
