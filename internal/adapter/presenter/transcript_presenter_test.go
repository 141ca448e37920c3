package presenter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/video-assistant/internal/domain/entities"
	aiuse "github.com/johnquangdev/video-assistant/internal/usecase/ai"
)

func TestFormatTimestamp(t *testing.T) {
	cases := map[float64]string{
		0:       "00:00",
		59.9:    "00:59",
		60:      "01:00",
		90.5:    "01:30",
		3725:    "62:05",
		-3:      "00:00",
		6000.25: "100:00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatTimestamp(in), "seconds=%v", in)
	}
}

func TestTranscriptHTML(t *testing.T) {
	out := TranscriptHTML([]entities.Paragraph{
		{Text: "hello world ", Start: 0},
		{Text: "a < b & c", Start: 90.5},
	})

	assert.True(t, strings.HasPrefix(out, "<style> .transcript-p"))
	assert.Contains(t, out, "function seekTo(seconds)")
	assert.Contains(t, out, `<p class="transcript-p"><a href="#" onclick="seekTo(0); return false;" class="timestamp-link">00:00</a>hello world</p>`)
	assert.Contains(t, out, `<a href="#" onclick="seekTo(90.5); return false;" class="timestamp-link">01:30</a>a &lt; b &amp; c</p>`)
	assert.Equal(t, 2, strings.Count(out, `class="transcript-p"`))
}

func TestEmbedHTML(t *testing.T) {
	out := EmbedHTML("dQw4w9WgXcQ")
	assert.Contains(t, out, `src="https://www.youtube.com/embed/dQw4w9WgXcQ?enablejsapi=1"`)
	assert.Contains(t, out, `width="100%"`)
	assert.Contains(t, out, `<script src="https://www.youtube.com/iframe_api"></script>`)
}

func TestTitleMarkdown(t *testing.T) {
	assert.Equal(t, "### Title\n[Visit on YouTube](https://youtu.be/x)", TitleMarkdown("Title", "https://youtu.be/x"))
}

func TestToTranscriptResponse(t *testing.T) {
	assert.Nil(t, ToTranscriptResponse(nil))

	tr := entities.NewTranscript(
		entities.Video{ID: "dQw4w9WgXcQ", Title: "T", URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		[]entities.CaptionSegment{{Text: "a", Start: 0}, {Text: "b", Start: 100}},
		[]entities.Paragraph{{Text: "a", Start: 0}, {Text: "b", Start: 100}},
	)
	resp := ToTranscriptResponse(tr)
	require.NotNil(t, resp)
	assert.Equal(t, "a b", resp.Text)
	assert.Equal(t, "01:40", resp.Paragraphs[1].Timestamp)
	assert.Contains(t, resp.TitleMarkdown, "### T")
	assert.Contains(t, resp.EmbedHTML, "dQw4w9WgXcQ")
}

func TestToChatResponse(t *testing.T) {
	resp := ToChatResponse(&aiuse.Result{
		Status:  aiuse.StatusOK,
		Text:    "answer",
		History: []entities.ChatTurn{{Role: entities.ChatRoleUser, Content: "q"}},
	})
	require.NotNil(t, resp)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "user", resp.History[0].Role)
}
