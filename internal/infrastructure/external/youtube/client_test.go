package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/video-assistant/internal/domain/entities"
	"github.com/johnquangdev/video-assistant/pkg/config"
)

const legacyCaptions = `<?xml version="1.0" encoding="utf-8" ?><transcript>
<text start="0.5" dur="2.1">hello &amp;amp; welcome</text>
<text start="3" dur="1.5">it&amp;#39;s   a
test</text>
<text start="5" dur="1"></text>
<text start="90" dur="2">later part</text>
</transcript>`

func watchPage(captionURL, title string) string {
	return fmt.Sprintf(`<!DOCTYPE html><html><head><title>Page Title - YouTube</title>
<meta property="og:title" content="OG Title"></head><body>
<script>var ytInitialPlayerResponse = {"playabilityStatus":{"status":"OK"},"videoDetails":{"videoId":"dQw4w9WgXcQ","title":%q},
"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[
{"baseUrl":"%s/api/timedtext?lang=de","languageCode":"de"},
{"baseUrl":"%s/api/timedtext?lang=en&kind=asr","languageCode":"en","kind":"asr"},
{"baseUrl":"%s/api/timedtext?lang=en","languageCode":"en"}]}}};var meta = {"a":"}"};</script>
</body></html>`, title, captionURL, captionURL, captionURL)
}

func newTestServer(t *testing.T, title string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var captionHits atomic.Int32
	mux := http.NewServeMux()
	var ts *httptest.Server
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") != "dQw4w9WgXcQ" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, watchPage(ts.URL, title))
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		captionHits.Add(1)
		if r.URL.Query().Get("lang") != "en" || r.URL.Query().Get("kind") != "" {
			t.Errorf("expected manual english track, got %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, legacyCaptions)
	})
	ts = httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts, &captionHits
}

func TestClientFetch_Success(t *testing.T) {
	ts, hits := newTestServer(t, "Never Gonna Give You Up")
	client := NewClient(&config.SourceConfig{BaseURL: ts.URL, Timeout: 5 * time.Second}, []string{"en"}, nil)

	got, err := client.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Equal(t, "dQw4w9WgXcQ", got.Video.ID)
	assert.Equal(t, "Never Gonna Give You Up", got.Video.Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", got.Video.URL)
	assert.Equal(t, "en", got.Video.Language)
	assert.False(t, got.Video.AutoGenerated)
	assert.Equal(t, int32(1), hits.Load())

	require.Len(t, got.Segments, 3)
	assert.Equal(t, entities.CaptionSegment{Text: "hello & welcome", Start: 0.5, Duration: 2.1}, got.Segments[0])
	assert.Equal(t, "it's a test", got.Segments[1].Text)
	assert.Equal(t, 90.0, got.Segments[2].Start)
}

func TestClientFetch_TitleFallsBackToPageMeta(t *testing.T) {
	ts, _ := newTestServer(t, "")
	client := NewClient(&config.SourceConfig{BaseURL: ts.URL, Timeout: 5 * time.Second}, nil, nil)

	got, err := client.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "OG Title", got.Video.Title)
}

func TestClientFetch_NoCaptions(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><script>var ytInitialPlayerResponse = {"playabilityStatus":{"status":"LOGIN_REQUIRED","reason":"Private video"}};</script></html>`)
	}))
	defer ts.Close()

	client := NewClient(&config.SourceConfig{BaseURL: ts.URL, Timeout: 5 * time.Second}, nil, nil)
	_, err := client.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrNoCaptions))
	assert.Contains(t, err.Error(), "Private video")
}

func TestClientFetch_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := NewClient(&config.SourceConfig{BaseURL: ts.URL, Timeout: 5 * time.Second}, nil, nil)
	_, err := client.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClientFetch_RetriesWhenConfigured(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := NewClient(&config.SourceConfig{BaseURL: ts.URL, Timeout: 5 * time.Second, MaxRetries: 2}, nil, nil)
	_, err := client.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientFetch_NotFoundIsPermanent(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer ts.Close()

	client := NewClient(&config.SourceConfig{BaseURL: ts.URL, Timeout: 5 * time.Second, MaxRetries: 3}, nil, nil)
	_, err := client.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestPickBestTrack(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "u1&exp=xpe", LanguageCode: "en"},
		{BaseURL: "u2", LanguageCode: "fr"},
		{BaseURL: "u3", LanguageCode: "en-GB", Kind: "asr"},
		{BaseURL: "u4", LanguageCode: "de", Kind: "asr"},
	}

	got, ok := pickBestTrack(tracks, []string{"de"})
	require.True(t, ok)
	assert.Equal(t, "u4", got.BaseURL)

	got, ok = pickBestTrack(tracks, []string{"ja"})
	require.True(t, ok)
	assert.Equal(t, "u3", got.BaseURL)

	_, ok = pickBestTrack([]captionTrack{{BaseURL: "x&exp=xpe"}}, []string{"en"})
	assert.False(t, ok)
}

func TestPickBestTrack_Ranking(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "asr-de", LanguageCode: "de", Kind: "asr"},
		{BaseURL: "manual-fr", LanguageCode: "fr"},
		{BaseURL: "manual-de", LanguageCode: "de"},
		{BaseURL: "manual-de-2", LanguageCode: "de"},
	}

	got, _ := pickBestTrack(tracks, []string{"de", "fr"})
	assert.Equal(t, "manual-de", got.BaseURL)

	got, _ = pickBestTrack(tracks, []string{"it", "fr"})
	assert.Equal(t, "manual-fr", got.BaseURL)

	got, _ = pickBestTrack(tracks[:1], []string{"fr"})
	assert.Equal(t, "asr-de", got.BaseURL)

	_, ok := pickBestTrack(nil, []string{"en"})
	assert.False(t, ok)
}

func TestExtractJSON(t *testing.T) {
	in := []byte(`{"a":"br}ace \"quoted\" \\","b":{"c":1}};rest`)
	assert.Equal(t, `{"a":"br}ace \"quoted\" \\","b":{"c":1}}`, string(extractJSON(in)))
	assert.Nil(t, extractJSON([]byte(`{"unterminated":`)))
	assert.Nil(t, extractJSON([]byte(`x{}`)))
}

func TestParseTimedText_Format3(t *testing.T) {
	body := []byte(`<timedtext format="3"><body>
<p t="1500" d="2000">first line</p>
<p t="4000" d="1000"><s>second</s><s> part</s></p>
</body></timedtext>`)
	segs, err := parseTimedText(body)
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, entities.CaptionSegment{Text: "first line", Start: 1.5, Duration: 2}, segs[0])
	assert.Equal(t, "second part", segs[1].Text)
}
