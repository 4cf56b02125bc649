//go:build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/latitune-backend/internal/adapter/postgres"
	"github.com/heartmarshall/latitune-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/latitune-backend/internal/app"
	"github.com/heartmarshall/latitune-backend/internal/config"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper). The schema reset endpoint is
// disabled because the database is shared between tests.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	db := stdlib.OpenDBFromPool(pool)
	t.Cleanup(func() { _ = db.Close() })

	migrator, err := postgres.NewMigrator(db)
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{RequestTimeout: 10 * time.Second},
		Auth:   config.AuthConfig{PasswordHashCost: 4},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type",
		},
		Blip: config.BlipConfig{NearbyLimit: 25},
	}

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	srv := httptest.NewServer(app.NewHandler(cfg, pool, migrator, logger))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

type envelope struct {
	Meta struct {
		Status int    `json:"status"`
		Error  string `json:"error"`
	} `json:"meta"`
	Objects []map[string]any `json:"objects"`
}

// call sends params as a form body for writes and as the query string
// otherwise, and decodes the envelope.
func (ts *testServer) call(t *testing.T, method, path string, params url.Values) (int, envelope) {
	t.Helper()

	target := ts.URL + path
	var body io.Reader
	if method == http.MethodGet || method == http.MethodDelete {
		if len(params) > 0 {
			target += "?" + params.Encode()
		}
	} else {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

// mustSucceed asserts a status 20 envelope and returns its objects.
func (ts *testServer) mustSucceed(t *testing.T, method, path string, params url.Values) []map[string]any {
	t.Helper()
	code, env := ts.call(t, method, path, params)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 20, env.Meta.Status, "meta.error=%q", env.Meta.Error)
	return env.Objects
}

type testUser struct {
	ID       int64
	Name     string
	Password string
}

func (u testUser) creds() url.Values {
	return url.Values{"user_id": {itoa(u.ID)}, "password": {u.Password}}
}

func createUser(t *testing.T, ts *testServer) testUser {
	t.Helper()
	name := testhelper.UniqueName("e2e")
	objs := ts.mustSucceed(t, http.MethodPut, "/api/user", url.Values{
		"username": {name},
		"email":    {name + "@example.com"},
		"password": {"hunter2"},
	})
	require.Len(t, objs, 1)
	return testUser{ID: int64(objs[0]["id"].(float64)), Name: name, Password: "hunter2"}
}

func createSong(t *testing.T, ts *testServer) int64 {
	t.Helper()
	objs := ts.mustSucceed(t, http.MethodPut, "/api/song", url.Values{
		"artist": {testhelper.UniqueName("artist")},
		"title":  {"Song"},
	})
	require.Len(t, objs, 1)
	return int64(objs[0]["id"].(float64))
}

func createBlip(t *testing.T, ts *testServer, u testUser, songID int64, lat, lon float64) int64 {
	t.Helper()
	params := u.creds()
	params.Set("song_id", itoa(songID))
	params.Set("latitude", ftoa(lat))
	params.Set("longitude", ftoa(lon))
	objs := ts.mustSucceed(t, http.MethodPut, "/api/blip", params)
	require.Len(t, objs, 1)
	return int64(objs[0]["id"].(float64))
}
