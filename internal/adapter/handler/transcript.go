package handler

import (
	stdErrors "errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/video-assistant/errors"
	transcriptDTO "github.com/johnquangdev/video-assistant/internal/adapter/dto/transcript"
	"github.com/johnquangdev/video-assistant/internal/adapter/presenter"
	"github.com/johnquangdev/video-assistant/internal/domain/entities"
	ucerrors "github.com/johnquangdev/video-assistant/internal/usecase/errors"
	transcriptuse "github.com/johnquangdev/video-assistant/internal/usecase/transcript"
)

const streamWriteTimeout = 10 * time.Second

// Transcript handles transcript loading endpoints
type Transcript struct {
	svc      transcriptuse.Service
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewTranscriptHandler creates a new transcript handler.
// allowedOrigins limits which pages may open the progress stream; "*" allows any.
func NewTranscriptHandler(svc transcriptuse.Service, allowedOrigins []string, logger *zap.Logger) *Transcript {
	return &Transcript{
		svc: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || strings.EqualFold(a, origin) {
				return true
			}
		}
		// same host is always fine
		return strings.HasSuffix(origin, "://"+r.Host)
	}
}

// toAppError maps a failed fetch to the HTTP error taxonomy
func toAppError(rawURL string, err error) errors.AppError {
	switch {
	case stdErrors.Is(err, ucerrors.ErrInvalidURL):
		return errors.ErrInvalidVideoURL(rawURL, err)
	case stdErrors.Is(err, ucerrors.ErrSourceFetch):
		videoID, _ := entities.ParseVideoID(rawURL)
		return errors.ErrTranscriptFetchFailed(videoID, err)
	default:
		return errors.ErrInternal(err)
	}
}

// Fetch loads a video's transcript into the session
// @Summary      Load transcript
// @Description  Fetches the captions of a YouTube video, groups them into paragraphs and stores them in the session
// @Tags         Transcript
// @Accept       json
// @Produce      json
// @Param        request  body      transcript.FetchTranscriptRequest  true  "Video URL"
// @Success      200      {object}  transcript.FetchTranscriptResponse
// @Failure      400      {object}  common.ErrorResponse  "Invalid YouTube URL"
// @Failure      502      {object}  common.ErrorResponse  "Transcript could not be fetched"
// @Router       /transcripts [post]
func (h *Transcript) Fetch(c echo.Context) error {
	var req transcriptDTO.FetchTranscriptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	sid, err := sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var events []entities.ProgressEvent
	t, err := h.svc.Fetch(c.Request().Context(), sid, req.URL, func(e entities.ProgressEvent) {
		events = append(events, e)
	})
	if err != nil {
		appErr := toAppError(req.URL, err)
		// same text the stream shows in its error event
		if n := len(events); n > 0 && events[n-1].Stage == entities.ProgressStageError {
			appErr.Message = events[n-1].Message
		}
		return HandleError(h.logger, c, appErr)
	}

	return HandleSuccess(h.logger, c, transcriptDTO.FetchTranscriptResponse{
		Events:     presenter.ToProgressEventResponses(events),
		Status:     transcriptuse.MessageDone,
		Transcript: presenter.ToTranscriptResponse(t),
	})
}

// Stream loads a transcript while pushing progress events over a websocket
// @Summary      Load transcript with progress
// @Description  Websocket. Sends one JSON message per progress stage; the done message carries the transcript, then the socket closes
// @Tags         Transcript
// @Param        url  query  string  true  "YouTube URL"
// @Success      101  {object}  transcript.StreamMessage
// @Router       /transcripts/stream [get]
func (h *Transcript) Stream(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	// forward headers set by middleware, the session cookie in particular
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), c.Response().Header())
	if err != nil {
		// Upgrade already wrote the HTTP error
		h.logger.Warn("transcript.stream.upgrade_failed", zap.Error(err))
		return nil
	}
	defer conn.Close()

	send := func(msg transcriptDTO.StreamMessage) {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Debug("transcript.stream.write_failed", zap.Error(err))
		}
	}

	// a blank or malformed url is reported by the service as start then error
	t, err := h.svc.Fetch(c.Request().Context(), sid, c.QueryParam("url"), func(e entities.ProgressEvent) {
		// done goes out below, with the transcript attached
		if e.Stage == entities.ProgressStageDone {
			return
		}
		send(transcriptDTO.StreamMessage{Stage: string(e.Stage), Message: e.Message})
	})
	if err == nil {
		send(transcriptDTO.StreamMessage{
			Stage:      string(entities.ProgressStageDone),
			Message:    transcriptuse.MessageDone,
			Transcript: presenter.ToTranscriptResponse(t),
		})
	}

	h.closeStream(conn)
	return nil
}

func (h *Transcript) closeStream(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
}

// Current returns the transcript loaded in the session
// @Summary      Current transcript
// @Description  Returns the transcript currently loaded in the caller's session
// @Tags         Transcript
// @Produce      json
// @Success      200  {object}  transcript.TranscriptResponse
// @Failure      404  {object}  common.ErrorResponse  "No transcript loaded"
// @Router       /transcripts/current [get]
func (h *Transcript) Current(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	t, err := h.svc.Current(c.Request().Context(), sid)
	if err != nil {
		if stdErrors.Is(err, ucerrors.ErrNotReady) {
			return HandleError(h.logger, c, errors.ErrTranscriptNotReady())
		}
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(h.logger, c, presenter.ToTranscriptResponse(t))
}
