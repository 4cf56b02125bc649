// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/latitune-backend/internal/adapter/postgres"
	"github.com/heartmarshall/latitune-backend/internal/domain"
)

var columns = []string{"id", "name", "email", "pw_hash", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByName returns a user by unique name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name}, name)
}

// GetByEmail returns a user by unique email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, email)
}

// Create inserts a new user. A duplicate name or email yields
// domain.ErrAlreadyExists; callers classify which one collided.
func (r *Repo) Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Insert("users").
		Columns("name", "email", "pw_hash").
		Values(name, email, passwordHash).
		Suffix("RETURNING id, name, email, pw_hash, created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", name)
	}
	return &u, nil
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, key any) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return &u, nil
}
