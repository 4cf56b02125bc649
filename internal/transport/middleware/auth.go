package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heartmarshall/latitune-backend/internal/domain"
	"github.com/heartmarshall/latitune-backend/internal/service/user"
	"github.com/heartmarshall/latitune-backend/pkg/ctxutil"
)

// Authenticator resolves password credentials to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, c user.Credentials) (*domain.User, error)
}

// Auth verifies the password credentials carried in the request parameters.
// The identifier is user_id when present, else username; password is
// required. On success the user id is stored with ctxutil.WithUserID.
// Failures are rendered by fail.
func Auth(authn Authenticator, fail ErrorWriter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			creds, err := credentialsFrom(Values(r))
			if err != nil {
				fail(w, r, err)
				return
			}

			u, err := authn.Authenticate(r.Context(), creds)
			if err != nil {
				fail(w, r, err)
				return
			}

			recordUser(r.Context(), u.ID)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), u.ID)))
		})
	}
}

func credentialsFrom(vals map[string][]string) (user.Credentials, error) {
	var c user.Credentials

	if v, ok := vals["user_id"]; ok {
		c.UserID = first(v)
	} else if v, ok := vals["username"]; ok {
		c.Username = first(v)
	} else {
		return c, fmt.Errorf("user_id or username: %w", domain.ErrMissingParameter)
	}

	pw, ok := vals["password"]
	if !ok {
		return c, fmt.Errorf("password: %w", domain.ErrMissingParameter)
	}
	c.Password = *first(pw)

	return c, nil
}

func first(v []string) *string {
	s := ""
	if len(v) > 0 {
		s = v[0]
	}
	return &s
}
