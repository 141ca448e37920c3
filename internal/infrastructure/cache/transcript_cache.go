package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/johnquangdev/video-assistant/internal/domain/repositories"
	"github.com/johnquangdev/video-assistant/internal/infrastructure/metrics"
)

// RemoteStore is the L2 tier of the transcript cache
type RemoteStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ErrCacheMiss is returned by a RemoteStore when the key is absent
var ErrCacheMiss = errors.New("cache miss")

// RedisStore adapts a go-redis client to RemoteStore
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps a connected redis client
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Get reads a key, mapping redis.Nil to ErrCacheMiss
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return b, err
}

// Set writes a key with a TTL
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

// CachedSource is a TranscriptSource decorator with an in-memory L1 and an optional remote L2.
// Failures are never cached.
type CachedSource struct {
	next    repositories.TranscriptSource
	l1      *MemoryStore[*repositories.FetchedVideo]
	l2      RemoteStore
	ttl     time.Duration
	keyPart string
	logger  *zap.Logger
	metrics *metrics.Metrics
}

var _ repositories.TranscriptSource = (*CachedSource)(nil)

// NewCachedSource wraps next. l2 may be nil to run memory-only.
// languages take part in the key since they change which track is chosen.
func NewCachedSource(next repositories.TranscriptSource, l2 RemoteStore, ttl time.Duration, languages []string, logger *zap.Logger, m *metrics.Metrics) *CachedSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedSource{
		next:    next,
		l1:      NewMemoryStore[*repositories.FetchedVideo](ttl),
		l2:      l2,
		ttl:     ttl,
		keyPart: strings.Join(languages, ","),
		logger:  logger,
		metrics: m,
	}
}

// CacheKey builds a deterministic cache key from parts
func CacheKey(parts ...string) string {
	joined := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("va:transcript:%x", hash[:12])
}

// Fetch tries L1, then L2, then the wrapped source
func (c *CachedSource) Fetch(ctx context.Context, videoID string) (*repositories.FetchedVideo, error) {
	key := CacheKey(videoID, c.keyPart)

	if v, ok := c.l1.Get(key); ok {
		c.metrics.ObserveCache("l1")
		return v, nil
	}

	if c.l2 != nil {
		data, err := c.l2.Get(ctx, key)
		switch {
		case err == nil:
			var v repositories.FetchedVideo
			jerr := json.Unmarshal(data, &v)
			if jerr == nil {
				c.l1.Set(key, &v, c.ttl)
				c.metrics.ObserveCache("l2")
				return &v, nil
			}
			c.logger.Warn("cache.l2.corrupt", zap.String("video_id", videoID), zap.Error(jerr))
		case !errors.Is(err, ErrCacheMiss):
			c.logger.Warn("cache.l2.get_failed", zap.String("video_id", videoID), zap.Error(err))
		}
	}

	c.metrics.ObserveCache("miss")
	v, err := c.next.Fetch(ctx, videoID)
	if err != nil {
		return nil, err
	}

	c.l1.Set(key, v, c.ttl)
	if c.l2 != nil {
		if data, err := json.Marshal(v); err == nil {
			if err := c.l2.Set(ctx, key, data, c.ttl); err != nil {
				c.logger.Warn("cache.l2.set_failed", zap.String("video_id", videoID), zap.Error(err))
			}
		}
	}
	return v, nil
}

// Close stops the L1 sweeper
func (c *CachedSource) Close() {
	c.l1.Close()
}
