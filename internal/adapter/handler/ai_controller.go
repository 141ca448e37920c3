package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/video-assistant/errors"
	aiDTO "github.com/johnquangdev/video-assistant/internal/adapter/dto/ai"
	"github.com/johnquangdev/video-assistant/internal/adapter/presenter"
	aiuse "github.com/johnquangdev/video-assistant/internal/usecase/ai"
)

// AIController handles API endpoints that run text generation over the loaded transcript.
// Not-ready and failed generations are answered with HTTP 200 and a textual result.
type AIController struct {
	svc    aiuse.Service
	logger *zap.Logger
}

// NewAIController creates a new AI controller
func NewAIController(svc aiuse.Service, logger *zap.Logger) *AIController {
	return &AIController{svc: svc, logger: logger}
}

func (ac *AIController) generate(c echo.Context, run func(ctx context.Context, sid uuid.UUID) (*aiuse.Result, error)) error {
	sid, err := sessionID(c)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	res, err := run(c.Request().Context(), sid)
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(ac.logger, c, presenter.ToGenerationResponse(res))
}

// ShortSummary generates a one-paragraph summary
// @Summary      Short summary
// @Description  One-paragraph summary of the leading part of the transcript
// @Tags         AI
// @Produce      json
// @Success      200  {object}  ai.GenerationResponse
// @Router       /ai/summary/short [post]
func (ac *AIController) ShortSummary(c echo.Context) error {
	return ac.generate(c, ac.svc.ShortSummary)
}

// DetailedSummary generates a summary of the whole transcript
// @Summary      Detailed summary
// @Description  Summarises the transcript chunk by chunk, then combines the partial summaries
// @Tags         AI
// @Produce      json
// @Success      200  {object}  ai.GenerationResponse
// @Router       /ai/summary/detailed [post]
func (ac *AIController) DetailedSummary(c echo.Context) error {
	return ac.generate(c, ac.svc.DetailedSummary)
}

// BulletPoints extracts the main ideas as bullet points
// @Summary      Bullet points
// @Tags         AI
// @Produce      json
// @Success      200  {object}  ai.GenerationResponse
// @Router       /ai/bullets [post]
func (ac *AIController) BulletPoints(c echo.Context) error {
	return ac.generate(c, ac.svc.BulletPoints)
}

// Chat answers a question about the loaded video
// @Summary      Chat with the video
// @Description  Answers only from the transcript; the exchange is added to the session's chat history
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      ai.ChatRequest  true  "Question"
// @Success      200      {object}  ai.ChatResponse
// @Failure      400      {object}  common.ErrorResponse  "Missing message"
// @Router       /ai/chat [post]
func (ac *AIController) Chat(c echo.Context) error {
	var req aiDTO.ChatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(ac.logger, c, err)
	}
	sid, err := sessionID(c)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}

	res, err := ac.svc.Chat(c.Request().Context(), sid, req.Message)
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(ac.logger, c, presenter.ToChatResponse(res))
}

// ClearChat drops the session's chat history
// @Summary      Clear chat
// @Tags         AI
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ai/chat [delete]
func (ac *AIController) ClearChat(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	if err := ac.svc.ClearChat(c.Request().Context(), sid); err != nil {
		return HandleError(ac.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(ac.logger, c, map[string]interface{}{"status": "cleared"})
}
