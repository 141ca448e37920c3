package transcript

import "time"

// VideoResponse represents the loaded video
type VideoResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ParagraphResponse represents one timestamped paragraph
type ParagraphResponse struct {
	Start     float64 `json:"start"`
	Timestamp string  `json:"timestamp"`
	Text      string  `json:"text"`
}

// ProgressEventResponse represents one progress step of a fetch
type ProgressEventResponse struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// TranscriptResponse represents a loaded transcript with its rendered views
type TranscriptResponse struct {
	Video          VideoResponse       `json:"video"`
	TitleMarkdown  string              `json:"title_markdown"`
	EmbedHTML      string              `json:"embed_html"`
	TranscriptHTML string              `json:"transcript_html"`
	Paragraphs     []ParagraphResponse `json:"paragraphs"`
	Text           string              `json:"text"`
	FetchedAt      time.Time           `json:"fetched_at"`
}

// FetchTranscriptResponse is returned by the blocking fetch endpoint
type FetchTranscriptResponse struct {
	Events     []ProgressEventResponse `json:"events"`
	Status     string                  `json:"status"`
	Transcript *TranscriptResponse     `json:"transcript,omitempty"`
}

// StreamMessage is one websocket frame of the progress stream.
// Transcript is only set on the final done frame.
type StreamMessage struct {
	Stage      string              `json:"stage"`
	Message    string              `json:"message"`
	Transcript *TranscriptResponse `json:"transcript,omitempty"`
}
