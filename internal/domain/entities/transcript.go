package entities

import (
	"strings"
	"time"
)

// CaptionSegment is one timed caption line as delivered by the source
type CaptionSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Paragraph is a run of consecutive segments merged for reading
type Paragraph struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
}

// Transcript is the loaded transcript of one video
type Transcript struct {
	Video      Video            `json:"video"`
	Segments   []CaptionSegment `json:"segments"`
	Paragraphs []Paragraph      `json:"paragraphs"`
	Text       string           `json:"text"`
	FetchedAt  time.Time        `json:"fetched_at"`
}

// NewTranscript creates a transcript and derives its full text from the segments
func NewTranscript(video Video, segments []CaptionSegment, paragraphs []Paragraph) *Transcript {
	return &Transcript{
		Video:      video,
		Segments:   segments,
		Paragraphs: paragraphs,
		Text:       JoinSegmentText(segments),
		FetchedAt:  time.Now(),
	}
}

// JoinSegmentText joins all segment texts with single spaces
func JoinSegmentText(segments []CaptionSegment) string {
	texts := make([]string, len(segments))
	for i, s := range segments {
		texts[i] = s.Text
	}
	return strings.Join(texts, " ")
}

// IsEmpty reports whether there is no text to work with
func (t *Transcript) IsEmpty() bool {
	return t == nil || t.Text == ""
}
