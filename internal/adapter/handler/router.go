package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/video-assistant/internal/adapter/dto/common"
	"github.com/johnquangdev/video-assistant/internal/infrastructure/metrics"
	"github.com/johnquangdev/video-assistant/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	transcriptHandler *Transcript
	aiController      *AIController
	sessionMW         echo.MiddlewareFunc
	metrics           *metrics.Metrics
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	transcriptHandler *Transcript,
	aiController *AIController,
	sessionMW echo.MiddlewareFunc,
	m *metrics.Metrics,
) *Router {
	if sessionMW == nil {
		sessionMW = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return &Router{
		cfg:               cfg,
		transcriptHandler: transcriptHandler,
		aiController:      aiController,
		sessionMW:         sessionMW,
		metrics:           m,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.index, rt.sessionMW)

	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	if rt.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(rt.metrics.Handler()))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1", rt.sessionMW)

	rt.setupTranscriptRoutes(v1)
	rt.setupAIRoutes(v1)
}

// setupTranscriptRoutes configures transcript routes
func (rt *Router) setupTranscriptRoutes(g *echo.Group) {
	transcriptGroup := g.Group("/transcripts")

	if rt.transcriptHandler != nil {
		transcriptGroup.POST("", rt.transcriptHandler.Fetch)
		transcriptGroup.GET("/stream", rt.transcriptHandler.Stream)
		transcriptGroup.GET("/current", rt.transcriptHandler.Current)
	} else {
		transcriptGroup.POST("", rt.notImplemented)
		transcriptGroup.GET("/stream", rt.notImplemented)
		transcriptGroup.GET("/current", rt.notImplemented)
	}
}

// setupAIRoutes configures text generation routes
func (rt *Router) setupAIRoutes(g *echo.Group) {
	aiGroup := g.Group("/ai")

	if rt.aiController != nil {
		aiGroup.POST("/summary/short", rt.aiController.ShortSummary)
		aiGroup.POST("/summary/detailed", rt.aiController.DetailedSummary)
		aiGroup.POST("/bullets", rt.aiController.BulletPoints)
		aiGroup.POST("/chat", rt.aiController.Chat)
		aiGroup.DELETE("/chat", rt.aiController.ClearChat)
	} else {
		aiGroup.POST("/summary/short", rt.notImplemented)
		aiGroup.POST("/summary/detailed", rt.notImplemented)
		aiGroup.POST("/bullets", rt.notImplemented)
		aiGroup.POST("/chat", rt.notImplemented)
		aiGroup.DELETE("/chat", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{Status: "ok"}
	if rt.cfg != nil {
		resp.Environment = rt.cfg.Server.Environment
		resp.Provider = rt.cfg.LLM.Provider
	}
	return c.JSON(http.StatusOK, resp)
}
