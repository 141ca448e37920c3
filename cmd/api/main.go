package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/video-assistant/docs"
	pkgvalidator "github.com/johnquangdev/video-assistant/pkg/validator"

	"github.com/johnquangdev/video-assistant/internal/adapter/handler"
	"github.com/johnquangdev/video-assistant/internal/adapter/repository"
	"github.com/johnquangdev/video-assistant/internal/infrastructure/cache"
	"github.com/johnquangdev/video-assistant/internal/infrastructure/external/youtube"
	httpmw "github.com/johnquangdev/video-assistant/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/video-assistant/internal/infrastructure/metrics"
	aiuse "github.com/johnquangdev/video-assistant/internal/usecase/ai"
	transcriptuse "github.com/johnquangdev/video-assistant/internal/usecase/transcript"
	pkgai "github.com/johnquangdev/video-assistant/pkg/ai"
	"github.com/johnquangdev/video-assistant/pkg/config"
	"github.com/johnquangdev/video-assistant/pkg/jwt"
)

// @title           Video Assistant API
// @version         1.0
// @description     Fetches YouTube transcripts and runs summaries, bullet points and chat over them

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")
	ctx := context.Background()
	m := metrics.New()

	// Initialize text generation client (one shared client, credential never logged)
	log.Printf("🤖 Initializing %s text generation client...", cfg.LLM.Provider)
	generator, err := pkgai.NewGenerator(ctx, &cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize text generation client: %v", err)
	}

	// Initialize transcript source and its cache
	log.Println("📺 Initializing caption source...")
	source := youtube.NewClient(&cfg.Source, cfg.Transcript.Languages, logger)

	var l2 cache.RemoteStore
	if cfg.Redis.URL != "" {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		l2 = cache.NewRedisStore(redisClient)
	} else {
		log.Println("⚠️  REDIS_URL not set, transcript cache is memory only")
	}
	cachedSource := cache.NewCachedSource(source, l2, cfg.Redis.CacheTTL, cfg.Transcript.Languages, logger, m)
	defer cachedSource.Close()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	sessionRepo := repository.NewSessionRepository(cfg.Session.TTL)
	defer sessionRepo.Close()

	// Initialize services
	transcriptService := transcriptuse.NewTranscriptService(cachedSource, sessionRepo, cfg.Transcript.MinGap, logger, m)
	aiService := aiuse.NewAIService(generator, sessionRepo, cfg.Transcript, logger, m)

	// Initialize session token manager
	log.Println("🔑 Initializing session manager...")
	tokens := jwt.NewManager(cfg.Session.Secret, cfg.Session.TTL)
	sessionMW := httpmw.EchoSession(tokens, cfg.Session, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	transcriptHandler := handler.NewTranscriptHandler(transcriptService, cfg.Server.AllowedOrigins, logger)
	aiController := handler.NewAIController(aiService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, transcriptHandler, aiController, sessionMW, m)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	log.Println("✅ Server stopped gracefully")
}

// newLogger builds a production logger in production and a development one elsewhere
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}
	if cfg.Log.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	return zcfg.Build()
}
