package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/video-assistant/internal/domain/entities"
	"github.com/johnquangdev/video-assistant/internal/domain/repositories"
	"github.com/johnquangdev/video-assistant/pkg/config"
)

const (
	defaultBaseURL   = "https://www.youtube.com"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	maxWatchPageBytes = 6 * 1024 * 1024
	maxTimedTextBytes = 4 * 1024 * 1024
)

// Client fetches video metadata and captions by scraping the public watch page
type Client struct {
	baseURL    string
	languages  []string
	maxRetries int
	http       *http.Client
	logger     *zap.Logger
}

var _ repositories.TranscriptSource = (*Client)(nil)

// NewClient creates a caption client. Retries are disabled unless maxRetries > 0.
func NewClient(cfg *config.SourceConfig, languages []string, logger *zap.Logger) *Client {
	base := defaultBaseURL
	timeout := 30 * time.Second
	retries := 0
	if cfg != nil {
		if cfg.BaseURL != "" {
			base = strings.TrimRight(cfg.BaseURL, "/")
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
		if cfg.MaxRetries > 0 {
			retries = cfg.MaxRetries
		}
	}
	if len(languages) == 0 {
		languages = []string{"en"}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    base,
		languages:  languages,
		maxRetries: retries,
		http:       &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Fetch returns the title, chosen caption track metadata and timed segments of a video
func (c *Client) Fetch(ctx context.Context, videoID string) (*repositories.FetchedVideo, error) {
	page, err := c.get(ctx, c.baseURL+"/watch?v="+videoID, maxWatchPageBytes)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	player, err := parsePlayerResponse(page)
	if err != nil {
		return nil, err
	}

	video := entities.Video{
		ID:    videoID,
		Title: player.title(),
		URL:   entities.WatchURL(videoID),
	}
	if video.Title == "" {
		video.Title = extractPageTitle(page)
	}
	if video.Title == "" {
		video.Title = entities.DefaultVideoTitle
	}

	tracks := player.captionTracks()
	if len(tracks) == 0 {
		if reason := player.unplayableReason(); reason != "" {
			return nil, fmt.Errorf("%w: %s", entities.ErrNoCaptions, reason)
		}
		return nil, fmt.Errorf("%w for video %s", entities.ErrNoCaptions, videoID)
	}

	track, ok := pickBestTrack(tracks, c.languages)
	if !ok {
		return nil, fmt.Errorf("%w: all caption tracks require a browser token", entities.ErrNoCaptions)
	}
	video.Language = track.LanguageCode
	video.AutoGenerated = track.Kind == "asr"

	body, err := c.get(ctx, track.BaseURL, maxTimedTextBytes)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	segments, err := parseTimedText(body)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: caption track is empty", entities.ErrNoCaptions)
	}

	c.logger.Info("youtube.captions.fetched",
		zap.String("video_id", videoID),
		zap.String("language", track.LanguageCode),
		zap.Bool("auto_generated", video.AutoGenerated),
		zap.Int("segments", len(segments)),
	)

	return &repositories.FetchedVideo{Video: video, Segments: segments}, nil
}

// statusError is a non-2xx response from the source
type statusError struct {
	StatusCode int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// get performs a GET with an exponential backoff policy bounded by maxRetries
func (c *Client) get(ctx context.Context, url string, limit int64) ([]byte, error) {
	var body []byte

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", defaultUserAgent)
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		req.Header.Set("Cookie", "CONSENT=YES+1")

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			serr := &statusError{StatusCode: resp.StatusCode}
			if isRetryableStatus(resp.StatusCode) {
				return serr
			}
			return backoff.Permanent(serr)
		}

		b, err := io.ReadAll(io.LimitReader(resp.Body, limit))
		if err != nil {
			return err
		}
		body = b
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second

	var policy backoff.BackOff = backoff.WithMaxRetries(bo, uint64(c.maxRetries))
	policy = backoff.WithContext(policy, ctx)

	notify := func(err error, wait time.Duration) {
		c.logger.Warn("youtube.request.retry",
			zap.String("url", redactQuery(url)),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, err
	}
	return body, nil
}

// redactQuery drops the query string, which for caption URLs carries signed parameters
func redactQuery(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		return u[:i]
	}
	return u
}
