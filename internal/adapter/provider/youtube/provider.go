// Package youtube resolves songs to YouTube videos through the YouTube Data
// API v3 search endpoint.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/latitune-backend/internal/config"
	"github.com/heartmarshall/latitune-backend/internal/domain"
	"github.com/heartmarshall/latitune-backend/internal/provider"
)

const defaultRetryDelay = 500 * time.Millisecond

// Provider looks up songs on YouTube. Requests are throttled by a token
// bucket shared by all callers.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retryDelay time.Duration
	limiter    *rate.Limiter
	log        *slog.Logger
}

// NewProvider creates a Provider from ProviderConfig.
func NewProvider(cfg config.ProviderConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(cfg.YouTubeBaseURL, "/"),
		apiKey:     cfg.YouTubeAPIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryDelay: cfg.RetryDelay,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		log:        logger.With("adapter", "youtube"),
	}
}

// NewProviderWithURL creates an unthrottled Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, apiKey string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		retryDelay: defaultRetryDelay,
		limiter:    rate.NewLimiter(rate.Inf, 1),
		log:        logger.With("adapter", "youtube"),
	}
}

// FetchSong returns the best matching video for artist and title.
// Returns nil, nil when the search yields no video.
func (p *Provider) FetchSong(ctx context.Context, artist, title string) (*provider.SongMetadata, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("type", "video")
	q.Set("maxResults", "1")
	q.Set("q", artist+" "+title)
	q.Set("key", p.apiKey)
	reqURL := p.baseURL + "/search?" + q.Encode()

	p.log.DebugContext(ctx, "youtube request", slog.String("artist", artist), slog.String("title", title))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("youtube: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, artist, title)
	if err != nil {
		return nil, fmt.Errorf("youtube: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("youtube: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("youtube: status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("youtube: unexpected status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("youtube: decode json: %w", err)
	}

	for _, item := range result.Items {
		if item.ID.VideoID == "" {
			continue
		}
		p.log.DebugContext(ctx, "youtube match",
			slog.String("artist", artist),
			slog.String("title", title),
			slog.String("video_id", item.ID.VideoID),
		)
		return &provider.SongMetadata{
			ProviderKey:    domain.ProviderYouTube,
			ProviderSongID: item.ID.VideoID,
		}, nil
	}

	return nil, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
// Every attempt waits for the rate limiter first.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, artist, title string) (*http.Response, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "youtube retry",
		slog.String("artist", artist),
		slog.String("title", title),
		slog.String("reason", reason),
	)

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return p.httpClient.Do(req)
}
