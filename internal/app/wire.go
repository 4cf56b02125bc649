package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/latitune-backend/internal/adapter/postgres"
	blippg "github.com/heartmarshall/latitune-backend/internal/adapter/postgres/blip"
	commentpg "github.com/heartmarshall/latitune-backend/internal/adapter/postgres/comment"
	favoritepg "github.com/heartmarshall/latitune-backend/internal/adapter/postgres/favorite"
	songpg "github.com/heartmarshall/latitune-backend/internal/adapter/postgres/song"
	userpg "github.com/heartmarshall/latitune-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/latitune-backend/internal/adapter/provider/youtube"
	"github.com/heartmarshall/latitune-backend/internal/auth"
	"github.com/heartmarshall/latitune-backend/internal/config"
	"github.com/heartmarshall/latitune-backend/internal/provider"
	"github.com/heartmarshall/latitune-backend/internal/service/admin"
	"github.com/heartmarshall/latitune-backend/internal/service/blip"
	"github.com/heartmarshall/latitune-backend/internal/service/comment"
	"github.com/heartmarshall/latitune-backend/internal/service/favorite"
	"github.com/heartmarshall/latitune-backend/internal/service/song"
	"github.com/heartmarshall/latitune-backend/internal/service/user"
	"github.com/heartmarshall/latitune-backend/internal/transport/middleware"
	"github.com/heartmarshall/latitune-backend/internal/transport/rest"
)

// NewHandler assembles repositories, services and the HTTP router on top of
// an open pool. migrator backs the schema reset endpoint and the schema
// version reported by /health.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, migrator *postgres.Migrator, logger *slog.Logger) http.Handler {
	txm := postgres.NewTxManager(pool)

	userRepo := userpg.New(pool)
	songRepo := songpg.New(pool)
	blipRepo := blippg.New(pool)
	commentRepo := commentpg.New(pool)
	favoriteRepo := favoritepg.New(pool)

	users := user.NewService(logger, userRepo, auth.NewPasswordHasher(cfg.Auth.PasswordHashCost), txm)
	songs := song.NewService(logger, songRepo, txm, metadataProvider(cfg.Provider, logger), cfg.Provider.LookupBudget())
	blips := blip.NewService(logger, blipRepo, songRepo, txm, cfg.Blip.NearbyLimit)
	comments := comment.NewService(logger, commentRepo, blipRepo, txm)
	favorites := favorite.NewService(logger, favoriteRepo, blipRepo, txm)
	admins := admin.NewService(logger, migrator, cfg.Dev.Local)

	return rest.NewRouter(rest.RouterConfig{
		Auth:           users,
		RateLimiter:    writeLimiter(cfg.Server),
		CORS:           cfg.CORS,
		RequestTimeout: cfg.Server.RequestTimeout,
		Logger:         logger,
	}, rest.Handlers{
		User:     rest.NewUserHandler(users, logger),
		Song:     rest.NewSongHandler(songs, logger),
		Blip:     rest.NewBlipHandler(blips, logger),
		Comment:  rest.NewCommentHandler(comments, logger),
		Favorite: rest.NewFavoriteHandler(favorites, logger),
		Admin:    rest.NewAdminHandler(admins, logger),
		Health:   rest.NewHealthHandler(pool, migrator, BuildVersion()),
	})
}

// songMetadata is satisfied by the YouTube provider and its offline stub.
type songMetadata interface {
	FetchSong(ctx context.Context, artist, title string) (*provider.SongMetadata, error)
}

func metadataProvider(cfg config.ProviderConfig, logger *slog.Logger) songMetadata {
	if cfg.YouTubeEnabled() {
		return youtube.NewProvider(cfg, logger)
	}
	logger.Info("youtube api key not set, song metadata lookups disabled")
	return youtube.NewStub()
}

func writeLimiter(cfg config.ServerConfig) *middleware.RateLimiter {
	var opts []middleware.RateLimitOption
	if cfg.TrustProxy {
		opts = append(opts, middleware.WithForwardedFor())
	}
	return middleware.NewRateLimiter(cfg.WriteRateLimit, opts...)
}
