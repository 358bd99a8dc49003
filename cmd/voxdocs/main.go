package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voxdocs/internal/api"
	"voxdocs/internal/api/handlers"
	"voxdocs/internal/repository"
	"voxdocs/internal/service"
	"voxdocs/pkg/auth"
	"voxdocs/pkg/config"
	"voxdocs/pkg/logger"
	"voxdocs/pkg/postgres"

	"go.uber.org/zap"
)

// @title VoxDocs API
// @version 1.0
// @description Voice-driven Q&A assistant backend for Bubble documentation

// @contact.name API Support
// @contact.email support@voxdocs.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting VoxDocs service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	cacheRepo := repository.NewCacheRepository(db, appLogger)
	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	// Initialize services
	llmService, err := service.NewLLMService(&cfg.GigaChat, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	ragService := service.NewRAGService(knowledgeRepo, &cfg.KnowledgeBase, appLogger)
	responderService := service.NewResponderService(ragService, llmService, appLogger)
	ttsService := service.NewTTSService(&cfg.Speech, cfg.GigaChat.InsecureSkipVerify, appLogger)
	quickResponder := service.NewQuickResponder(time.Now().UnixNano())

	askService := service.NewAskService(cacheRepo, quickResponder, responderService, ttsService, &cfg.Cache, appLogger)

	// Initialize handlers
	askHandler := handlers.NewAskHandler(askService, appLogger)
	speechHandler := handlers.NewSpeechHandler(ttsService, appLogger)
	secretHandler := handlers.NewSecretHandler(&cfg.Secrets, appLogger)

	// Setup router
	app := api.SetupRouter(askHandler, speechHandler, secretHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
