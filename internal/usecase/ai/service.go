package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/video-assistant/internal/domain/entities"
	"github.com/johnquangdev/video-assistant/internal/domain/repositories"
	"github.com/johnquangdev/video-assistant/internal/infrastructure/metrics"
	pkgai "github.com/johnquangdev/video-assistant/pkg/ai"
	"github.com/johnquangdev/video-assistant/pkg/config"
	"github.com/johnquangdev/video-assistant/pkg/jobcontext"
)

const (
	opShortSummary    = "short_summary"
	opDetailedSummary = "detailed_summary"
	opBulletPoints    = "bullet_points"
	opChat            = "chat"
)

// ResultStatus tells a generated answer apart from the textual non-answers
type ResultStatus string

const (
	StatusOK       ResultStatus = "ok"
	StatusNotReady ResultStatus = "not_ready"
	StatusFailed   ResultStatus = "failed"
)

// Result is the outcome of one AI action. Text is always set and meant for display.
type Result struct {
	Status  ResultStatus
	Text    string
	Items   []string
	History []entities.ChatTurn
}

// Service defines AI use cases over the session's transcript.
// Generation failures are reported in the Result; the error return is kept for session storage failures.
type Service interface {
	ShortSummary(ctx context.Context, sessionID uuid.UUID) (*Result, error)
	DetailedSummary(ctx context.Context, sessionID uuid.UUID) (*Result, error)
	BulletPoints(ctx context.Context, sessionID uuid.UUID) (*Result, error)
	Chat(ctx context.Context, sessionID uuid.UUID, message string) (*Result, error)
	ClearChat(ctx context.Context, sessionID uuid.UUID) error
}

type aiService struct {
	gen      pkgai.Generator
	sessions repositories.SessionRepository
	parser   *Parser
	cfg      config.TranscriptConfig
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// NewAIService constructs a new AI service
func NewAIService(
	gen pkgai.Generator,
	sessions repositories.SessionRepository,
	cfg config.TranscriptConfig,
	logger *zap.Logger,
	m *metrics.Metrics,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.ChunkOverlap < 0 || cfg.ChunkOverlap >= cfg.ChunkSize {
		cfg.ChunkOverlap = DefaultChunkOverlap
	}
	if cfg.ShortSummaryMaxChars <= 0 {
		cfg.ShortSummaryMaxChars = DefaultShortSummaryMaxChars
	}
	return &aiService{
		gen:      gen,
		sessions: sessions,
		parser:   NewParser(),
		cfg:      cfg,
		logger:   logger,
		metrics:  m,
	}
}

// loadTranscript returns the session's transcript text, or "" if none is loaded
func (s *aiService) loadTranscript(ctx context.Context, sessionID uuid.UUID) (*entities.Session, string, error) {
	session, err := s.sessions.FindOrCreate(ctx, sessionID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load session: %w", err)
	}
	if !session.HasTranscript() {
		return session, "", nil
	}
	return session, session.Transcript.Text, nil
}

// generate issues exactly one request and records its outcome
func (s *aiService) generate(ctx context.Context, op, prompt string) (string, error) {
	started := time.Now()
	var text string
	err := jobcontext.JobEnd(ctx, func(ctx context.Context) error {
		var gerr error
		text, gerr = s.gen.Generate(ctx, prompt)
		return gerr
	})
	s.metrics.ObserveLLM(op, started, err)
	return text, err
}

func (s *aiService) failed(ctx context.Context, op string, err error) *Result {
	s.logger.Warn("ai.generation.failed", append(jobcontext.Fields(ctx), zap.String("operation", op), zap.Error(err))...)
	return &Result{Status: StatusFailed, Text: failureMessage(op, err)}
}

// ShortSummary summarises the leading part of the transcript in one paragraph
func (s *aiService) ShortSummary(ctx context.Context, sessionID uuid.UUID) (*Result, error) {
	ctx = jobcontext.JobBegin(ctx, sessionID, jobcontext.JobShortSummary)
	_, text, err := s.loadTranscript(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return &Result{Status: StatusNotReady, Text: MessageNotReady}, nil
	}

	out, err := s.generate(ctx, opShortSummary, shortSummaryPrompt(truncateRunes(text, s.cfg.ShortSummaryMaxChars)))
	if err != nil {
		return s.failed(ctx, opShortSummary, err), nil
	}
	return &Result{Status: StatusOK, Text: out}, nil
}

// DetailedSummary summarises every chunk of the transcript, then combines the partial summaries.
// The first failed request aborts the whole run.
func (s *aiService) DetailedSummary(ctx context.Context, sessionID uuid.UUID) (*Result, error) {
	ctx = jobcontext.JobBegin(ctx, sessionID, jobcontext.JobDetailedSummary)
	_, text, err := s.loadTranscript(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return &Result{Status: StatusNotReady, Text: MessageNotReady}, nil
	}

	chunks := SplitChunks(text, s.cfg.ChunkSize, s.cfg.ChunkOverlap)
	s.logger.Info("ai.detailed_summary.chunked", append(jobcontext.Fields(ctx), zap.Int("chunks", len(chunks)))...)

	summaries := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		s.logger.Debug("ai.detailed_summary.chunk",
			append(jobcontext.Fields(ctx), zap.Int("chunk", chunk.Index+1), zap.Int("of", len(chunks)))...)

		out, err := s.generate(ctx, opDetailedSummary, chunkSummaryPrompt(chunk.Text))
		if err != nil {
			return s.failed(ctx, opDetailedSummary, err), nil
		}
		summaries = append(summaries, out)
	}

	s.logger.Info("ai.detailed_summary.combining", jobcontext.Fields(ctx)...)
	out, err := s.generate(ctx, opDetailedSummary, combineSummariesPrompt(strings.Join(summaries, "\n")))
	if err != nil {
		return s.failed(ctx, opDetailedSummary, err), nil
	}
	s.logger.Info("ai.detailed_summary.done", jobcontext.Fields(ctx)...)
	return &Result{Status: StatusOK, Text: out}, nil
}

// BulletPoints lists the main ideas of the full transcript
func (s *aiService) BulletPoints(ctx context.Context, sessionID uuid.UUID) (*Result, error) {
	ctx = jobcontext.JobBegin(ctx, sessionID, jobcontext.JobBulletPoints)
	_, text, err := s.loadTranscript(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return &Result{Status: StatusNotReady, Text: MessageNotReady}, nil
	}

	out, err := s.generate(ctx, opBulletPoints, bulletPointsPrompt(text))
	if err != nil {
		return s.failed(ctx, opBulletPoints, err), nil
	}
	return &Result{Status: StatusOK, Text: out, Items: s.parser.ParseBullets(out)}, nil
}

// Chat answers a question from the transcript and records the exchange on success
func (s *aiService) Chat(ctx context.Context, sessionID uuid.UUID, message string) (*Result, error) {
	ctx = jobcontext.JobBegin(ctx, sessionID, jobcontext.JobChat)
	session, text, err := s.loadTranscript(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return &Result{Status: StatusNotReady, Text: MessageChatNotReady, History: session.History}, nil
	}

	out, err := s.generate(ctx, opChat, chatPrompt(text, session.History, message))
	if err != nil {
		res := s.failed(ctx, opChat, err)
		res.History = session.History
		return res, nil
	}

	session.AppendExchange(message, out)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return &Result{Status: StatusOK, Text: out, History: session.History}, nil
}

// ClearChat drops the session's chat history
func (s *aiService) ClearChat(ctx context.Context, sessionID uuid.UUID) error {
	session, err := s.sessions.FindOrCreate(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	session.ClearHistory()
	return s.sessions.Save(ctx, session)
}
