package transcript

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/video-assistant/internal/domain/entities"
	"github.com/johnquangdev/video-assistant/internal/domain/repositories"
	"github.com/johnquangdev/video-assistant/internal/infrastructure/metrics"
	ucerrors "github.com/johnquangdev/video-assistant/internal/usecase/errors"
	"github.com/johnquangdev/video-assistant/pkg/jobcontext"
)

// Progress messages shown to the user while a fetch runs
const (
	MessageStarting   = "Starting generation..."
	MessageProcessing = "Processing data..."
	MessageDone       = "Done!"
)

// ProgressFunc receives progress events synchronously, in order
type ProgressFunc func(entities.ProgressEvent)

// Service defines transcript use cases
type Service interface {
	// Fetch loads the transcript of rawURL into the session, reporting progress as it goes.
	// On failure the session keeps its previous transcript.
	Fetch(ctx context.Context, sessionID uuid.UUID, rawURL string, progress ProgressFunc) (*entities.Transcript, error)

	// Current returns the transcript loaded in the session
	Current(ctx context.Context, sessionID uuid.UUID) (*entities.Transcript, error)
}

type transcriptService struct {
	source   repositories.TranscriptSource
	sessions repositories.SessionRepository
	minGap   float64
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// NewTranscriptService constructs a new transcript service
func NewTranscriptService(
	source repositories.TranscriptSource,
	sessions repositories.SessionRepository,
	minGap float64,
	logger *zap.Logger,
	m *metrics.Metrics,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &transcriptService{
		source:   source,
		sessions: sessions,
		minGap:   minGap,
		logger:   logger,
		metrics:  m,
	}
}

// FailureMessage is the user-facing text for a failed fetch
func FailureMessage(err error) string {
	return fmt.Sprintf("An error occurred: Failed to get transcript. Is it a valid YouTube URL with transcripts enabled? Error: %v", err)
}

func (s *transcriptService) Fetch(ctx context.Context, sessionID uuid.UUID, rawURL string, progress ProgressFunc) (*entities.Transcript, error) {
	if progress == nil {
		progress = func(entities.ProgressEvent) {}
	}
	ctx = jobcontext.JobBegin(ctx, sessionID, jobcontext.JobFetchTranscript)

	progress(entities.ProgressEvent{Stage: entities.ProgressStageStart, Message: MessageStarting})

	fail := func(kind error, err error) (*entities.Transcript, error) {
		s.metrics.ObserveFetch("failed")
		s.logger.Warn("transcript.fetch.failed", append(jobcontext.Fields(ctx), zap.Error(err))...)
		progress(entities.ProgressEvent{Stage: entities.ProgressStageError, Message: FailureMessage(err)})
		return nil, ucerrors.Wrap(kind, err)
	}

	videoID, err := entities.ParseVideoID(rawURL)
	if err != nil {
		return fail(ucerrors.ErrInvalidURL, err)
	}

	var fetched *repositories.FetchedVideo
	err = jobcontext.JobEnd(ctx, func(ctx context.Context) error {
		var ferr error
		fetched, ferr = s.source.Fetch(ctx, videoID)
		return ferr
	})
	if err != nil {
		return fail(ucerrors.ErrSourceFetch, err)
	}

	progress(entities.ProgressEvent{Stage: entities.ProgressStageProcessing, Message: MessageProcessing})

	video := fetched.Video
	video.ID = videoID
	video.URL = rawURL
	if video.Title == "" {
		video.Title = entities.DefaultVideoTitle
	}

	t := entities.NewTranscript(video, fetched.Segments, Rebatch(fetched.Segments, s.minGap))

	session, err := s.sessions.FindOrCreate(ctx, sessionID)
	if err != nil {
		return fail(ucerrors.ErrInternalError, err)
	}
	session.ReplaceTranscript(t)
	if err := s.sessions.Save(ctx, session); err != nil {
		return fail(ucerrors.ErrInternalError, err)
	}

	s.metrics.ObserveFetch("ok")
	s.logger.Info("transcript.fetch.done", append(jobcontext.Fields(ctx),
		zap.String("video_id", videoID),
		zap.Int("segments", len(t.Segments)),
		zap.Int("paragraphs", len(t.Paragraphs)),
	)...)

	progress(entities.ProgressEvent{Stage: entities.ProgressStageDone, Message: MessageDone})
	return t, nil
}

func (s *transcriptService) Current(ctx context.Context, sessionID uuid.UUID) (*entities.Transcript, error) {
	session, err := s.sessions.FindOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.HasTranscript() {
		return nil, ucerrors.ErrNotReady
	}
	return session.Transcript, nil
}
