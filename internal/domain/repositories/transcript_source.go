package repositories

import (
	"context"

	"github.com/johnquangdev/video-assistant/internal/domain/entities"
)

// FetchedVideo is what a transcript source returns for one video
type FetchedVideo struct {
	Video    entities.Video
	Segments []entities.CaptionSegment
}

// TranscriptSource fetches video metadata and captions by video id
type TranscriptSource interface {
	Fetch(ctx context.Context, videoID string) (*FetchedVideo, error)
}
