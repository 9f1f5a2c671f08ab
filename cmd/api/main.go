package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"hirewise/cv-matcher/internal/config"
	"hirewise/cv-matcher/internal/handlers"
	"hirewise/cv-matcher/internal/logger"
	"hirewise/cv-matcher/internal/services"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("config loaded",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
		zap.Bool("llm_configured", cfg.Configured()),
	)

	// Initialize services
	extractor := services.NewTextExtractor()
	prompts := services.NewPromptBuilder(cfg.Upload.MaxPromptChars)

	// The server starts without a credential so operators can still reach
	// the health endpoint; LLM-backed operations return 503 until one is set.
	var completions services.CompletionClient
	if cfg.Configured() {
		switch cfg.LLM.Provider {
		case config.ProviderGemini:
			client, err := services.NewGeminiClient(context.Background(), cfg.LLM, zlog)
			if err != nil {
				zlog.Fatal("failed to initialize gemini client", zap.Error(err))
			}
			completions = client
		default:
			completions = services.NewOpenRouterClient(cfg.LLM, zlog)
		}
	} else {
		zlog.Warn("no completion API credential configured; LLM endpoints will return 503")
	}

	analyzer := services.NewAnalyzer(completions, extractor, prompts, zlog)

	// Initialize handlers
	parseHandler := handlers.NewParseHandler(analyzer, cfg.LLM.Model, cfg.Upload.MaxFileSize)
	matchHandler := handlers.NewMatchHandler(analyzer, cfg.LLM.Model)
	jobHandler := handlers.NewJobHandler(analyzer, cfg.LLM.Model)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CV Matcher API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	api.Post("/parse-cv", parseHandler.HandleParseCV)
	api.Post("/match-cv-jobs", matchHandler.HandleMatchJobs)
	api.Post("/generate-job-description", jobHandler.HandleGenerateDescription)
	api.Post("/generate-interview-questions", jobHandler.HandleGenerateQuestions)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":         "healthy",
			"llm_configured": cfg.Configured(),
		})
	})

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CV Matcher API",
			"version": version,
			"endpoints": []string{
				"POST /api/v1/parse-cv",
				"POST /api/v1/match-cv-jobs",
				"POST /api/v1/generate-job-description",
				"POST /api/v1/generate-interview-questions",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
