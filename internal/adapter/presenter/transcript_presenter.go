package presenter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	aiDTO "github.com/johnquangdev/video-assistant/internal/adapter/dto/ai"
	transcriptDTO "github.com/johnquangdev/video-assistant/internal/adapter/dto/transcript"
	"github.com/johnquangdev/video-assistant/internal/domain/entities"
	aiuse "github.com/johnquangdev/video-assistant/internal/usecase/ai"
)

const transcriptStyle = `<style> .transcript-p { margin-bottom: 20px; line-height: 1.6; font-family: sans-serif; padding-left: 10px; } .timestamp-link { color: #007bff; text-decoration: none; font-weight: bold; cursor: pointer; } </style>`

const playerScript = `<script>
    var player;
    function onYouTubeIframeAPIReady() { player = new YT.Player('youtube-player-iframe'); }
    function seekTo(seconds) { if (player) { player.seekTo(seconds, true); } }
</script>`

// FormatTimestamp renders seconds as MM:SS. Minutes are not capped at 59.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// TranscriptHTML renders paragraphs as clickable, timestamped markup that seeks the embedded player
func TranscriptHTML(paragraphs []entities.Paragraph) string {
	var b strings.Builder
	b.WriteString(transcriptStyle)
	b.WriteString(playerScript)
	for _, p := range paragraphs {
		fmt.Fprintf(&b,
			`<p class="transcript-p"><a href="#" onclick="seekTo(%s); return false;" class="timestamp-link">%s</a>%s</p>`,
			strconv.FormatFloat(p.Start, 'f', -1, 64),
			FormatTimestamp(p.Start),
			html.EscapeString(strings.TrimSpace(p.Text)),
		)
	}
	return b.String()
}

// EmbedHTML renders the player iframe for a video
func EmbedHTML(videoID string) string {
	return fmt.Sprintf(`<iframe id="youtube-player-iframe" width="100%%" height="400" src="https://www.youtube.com/embed/%s?enablejsapi=1" frameborder="0" allow="autoplay; encrypted-media" allowfullscreen></iframe><script src="https://www.youtube.com/iframe_api"></script>`,
		html.EscapeString(videoID))
}

// TitleMarkdown renders the title block with a link back to the video
func TitleMarkdown(title, url string) string {
	return fmt.Sprintf("### %s\n[Visit on YouTube](%s)", title, url)
}

// ToTranscriptResponse converts a Transcript entity to its response DTO
func ToTranscriptResponse(t *entities.Transcript) *transcriptDTO.TranscriptResponse {
	if t == nil {
		return nil
	}

	paragraphs := make([]transcriptDTO.ParagraphResponse, len(t.Paragraphs))
	for i, p := range t.Paragraphs {
		paragraphs[i] = transcriptDTO.ParagraphResponse{
			Start:     p.Start,
			Timestamp: FormatTimestamp(p.Start),
			Text:      p.Text,
		}
	}

	return &transcriptDTO.TranscriptResponse{
		Video: transcriptDTO.VideoResponse{
			ID:    t.Video.ID,
			Title: t.Video.Title,
			URL:   t.Video.URL,
		},
		TitleMarkdown:  TitleMarkdown(t.Video.Title, t.Video.URL),
		EmbedHTML:      EmbedHTML(t.Video.ID),
		TranscriptHTML: TranscriptHTML(t.Paragraphs),
		Paragraphs:     paragraphs,
		Text:           t.Text,
		FetchedAt:      t.FetchedAt,
	}
}

// ToProgressEventResponses converts progress events to their response DTOs
func ToProgressEventResponses(events []entities.ProgressEvent) []transcriptDTO.ProgressEventResponse {
	out := make([]transcriptDTO.ProgressEventResponse, len(events))
	for i, e := range events {
		out[i] = transcriptDTO.ProgressEventResponse{Stage: string(e.Stage), Message: e.Message}
	}
	return out
}

// ToGenerationResponse converts an AI result to its response DTO
func ToGenerationResponse(r *aiuse.Result) *aiDTO.GenerationResponse {
	if r == nil {
		return nil
	}
	return &aiDTO.GenerationResponse{
		Status: string(r.Status),
		Text:   r.Text,
		Items:  r.Items,
	}
}

// ToChatResponse converts a chat result to its response DTO
func ToChatResponse(r *aiuse.Result) *aiDTO.ChatResponse {
	if r == nil {
		return nil
	}
	history := make([]aiDTO.ChatTurnResponse, len(r.History))
	for i, turn := range r.History {
		history[i] = aiDTO.ChatTurnResponse{Role: string(turn.Role), Content: turn.Content}
	}
	return &aiDTO.ChatResponse{
		Status:  string(r.Status),
		Text:    r.Text,
		History: history,
	}
}
