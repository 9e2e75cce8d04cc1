package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	appApiKey "github.com/flagwise/flagwise/pkg/app/apikey"
	appModeration "github.com/flagwise/flagwise/pkg/app/moderation"
	"github.com/flagwise/flagwise/pkg/config"
	handlers "github.com/flagwise/flagwise/pkg/handlers/http"
	"github.com/flagwise/flagwise/pkg/infra/database"
	infraLogger "github.com/flagwise/flagwise/pkg/infra/logger"
	"github.com/flagwise/flagwise/pkg/infra/providers"
	"github.com/flagwise/flagwise/pkg/infra/providers/factory"
	"github.com/flagwise/flagwise/pkg/infra/repository"
	"github.com/flagwise/flagwise/pkg/server"
	"github.com/joho/godotenv"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg, err := config.Load("./config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := infraLogger.NewLogger(cfg.Server.LogLevel)

	// Initialize database
	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Error("failed to close database")
		}
	}()

	// repository
	apiKeyRepository := repository.NewApiKeyRepository(db.DB)
	resultRepository := repository.NewModerationResultRepository(db.DB)

	// classifier provider
	providerLocator := factory.NewProviderLocator()
	classifierClient, err := providerLocator.Get(cfg.Classifier.Provider)
	if err != nil {
		logger.Fatalf("failed to initialize classifier provider: %v", err)
	}

	providerConfig := &providers.Config{
		Credentials: providers.Credentials{
			ApiKey:  cfg.Classifier.ApiKey,
			BaseURL: cfg.Classifier.BaseURL,
		},
		Model:       cfg.Classifier.Model,
		MaxTokens:   cfg.Classifier.MaxTokens,
		Temperature: cfg.Classifier.Temperature,
		Options:     cfg.Classifier.Options,
	}

	// service
	apiKeyFinder := appApiKey.NewFinder(apiKeyRepository, logger)
	fallback := appModeration.NewFallbackGenerator(time.Now().UnixNano())
	moderator := appModeration.NewService(
		classifierClient, providerConfig, fallback, logger, cfg.Classifier.Timeout,
	)

	// Handler Transport
	handlerTransport := handlers.HandlerTransport{
		ModerateHandler:     handlers.NewModerateHandler(logger, apiKeyFinder, moderator, resultRepository),
		TestModerateHandler: handlers.NewTestModerateHandler(logger, moderator),
		GetVersionHandler:   handlers.NewGetVersionHandler(logger),
	}

	srv := server.NewModerationServer(server.ModerationServerDI{
		HandlerTransport: handlerTransport,
		Config:           cfg,
		Logger:           logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}
