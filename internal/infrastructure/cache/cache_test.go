package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/video-assistant/internal/domain/entities"
	"github.com/johnquangdev/video-assistant/internal/domain/repositories"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	s := NewMemoryStore[string](time.Minute)
	defer s.Close()

	_, ok := s.Get("k")
	assert.False(t, ok)

	s.Set("k", "v", time.Minute)
	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	s.Delete("k")
	_, ok = s.Get("k")
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore[int](time.Minute)
	defer s.Close()

	s.Set("k", 1, -time.Second)
	_, ok := s.Get("k")
	assert.False(t, ok)

	assert.Equal(t, 1, s.size())
	s.sweep()
	assert.Equal(t, 0, s.size())
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, CacheKey("abc", "en"), CacheKey("abc", "en"))
	assert.NotEqual(t, CacheKey("abc", "en"), CacheKey("abc", "de"))
	assert.Contains(t, CacheKey("x"), "va:transcript:")
}

type countingSource struct {
	calls int
	err   error
}

func (s *countingSource) Fetch(ctx context.Context, videoID string) (*repositories.FetchedVideo, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &repositories.FetchedVideo{
		Video:    entities.Video{ID: videoID, Title: "T"},
		Segments: []entities.CaptionSegment{{Text: "hi", Start: 0, Duration: 1}},
	}, nil
}

type fakeRemote struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (f *fakeRemote) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.data[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return b, nil
}

func (f *fakeRemote) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return nil
}

func TestCachedSource_L1Hit(t *testing.T) {
	src := &countingSource{}
	c := NewCachedSource(src, nil, time.Minute, []string{"en"}, nil, nil)
	defer c.Close()

	for i := 0; i < 3; i++ {
		v, err := c.Fetch(context.Background(), "dQw4w9WgXcQ")
		require.NoError(t, err)
		assert.Equal(t, "T", v.Video.Title)
	}
	assert.Equal(t, 1, src.calls)
}

func TestCachedSource_L2Hit(t *testing.T) {
	remote := &fakeRemote{data: map[string][]byte{}}
	want := repositories.FetchedVideo{Video: entities.Video{ID: "dQw4w9WgXcQ", Title: "From Redis"}}
	b, _ := json.Marshal(want)
	remote.data[CacheKey("dQw4w9WgXcQ", "en")] = b

	src := &countingSource{}
	c := NewCachedSource(src, remote, time.Minute, []string{"en"}, nil, nil)
	defer c.Close()

	v, err := c.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "From Redis", v.Video.Title)
	assert.Equal(t, 0, src.calls)
}

func TestCachedSource_MissPopulatesBothTiers(t *testing.T) {
	remote := &fakeRemote{data: map[string][]byte{}}
	src := &countingSource{}
	c := NewCachedSource(src, remote, time.Minute, []string{"en"}, nil, nil)
	defer c.Close()

	_, err := c.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Len(t, remote.data, 1)
}

func TestCachedSource_ErrorsNotCached(t *testing.T) {
	src := &countingSource{err: errors.New("down")}
	c := NewCachedSource(src, nil, time.Minute, nil, nil, nil)
	defer c.Close()

	_, err := c.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	_, err = c.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.Equal(t, 2, src.calls)
}
