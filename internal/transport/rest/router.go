package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/latitune-backend/internal/config"
	"github.com/heartmarshall/latitune-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	User     *UserHandler
	Song     *SongHandler
	Blip     *BlipHandler
	Comment  *CommentHandler
	Favorite *FavoriteHandler
	Admin    *AdminHandler
	Health   *HealthHandler
}

// RouterConfig holds the cross-cutting dependencies of the router.
type RouterConfig struct {
	Auth           middleware.Authenticator
	RateLimiter    *middleware.RateLimiter // nil disables write rate limiting
	CORS           config.CORSConfig
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(cfg RouterConfig, h Handlers) http.Handler {
	fail := ErrorWriter(cfg.Logger.With("handler", "router"))

	params := func(names ...string) middleware.Middleware {
		return middleware.RequireParams(fail, names...)
	}
	auth := middleware.Auth(cfg.Auth, fail)

	var limit middleware.Middleware
	if cfg.RateLimiter != nil {
		limit = cfg.RateLimiter.Limit(RateLimitedHandler())
	}
	write := func(mws ...middleware.Middleware) middleware.Middleware {
		return middleware.Chain(append([]middleware.Middleware{limit}, mws...)...)
	}

	mux := http.NewServeMux()

	mux.Handle("PUT /api/user", write(params("username", "email", "password")).ThenFunc(h.User.Create))
	mux.Handle("GET /api/user", auth.ThenFunc(h.User.Get))

	mux.HandleFunc("GET /api/blip", h.Blip.Get)
	mux.Handle("PUT /api/blip", write(params("song_id", "longitude", "latitude", "user_id", "password"), auth).ThenFunc(h.Blip.Create))

	mux.Handle("PUT /api/song", write(params("artist", "title")).ThenFunc(h.Song.Create))

	mux.Handle("PUT /api/blip/comment", write(params("user_id", "blip_id", "password", "comment"), auth).ThenFunc(h.Comment.Create))
	mux.HandleFunc("GET /api/blip/comment", h.Comment.Get)

	mux.Handle("PUT /api/blip/favorite", write(params("user_id", "blip_id", "password"), auth).ThenFunc(h.Favorite.Create))
	mux.HandleFunc("GET /api/blip/favorite", h.Favorite.List)
	mux.Handle("DELETE /api/blip/favorite", write(params("user_id", "blip_id", "password"), auth).ThenFunc(h.Favorite.Delete))

	mux.HandleFunc("GET /api/tabularasa", h.Admin.Reset)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(cfg.Logger),
		middleware.Recovery(cfg.Logger, InternalErrorHandler()),
		middleware.CORS(cfg.CORS),
		middleware.Timeout(cfg.RequestTimeout),
		middleware.Params(fail),
	)(mux)
}
