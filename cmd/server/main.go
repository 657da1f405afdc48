// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/api"
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/api/handlers"
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/config"
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/health"
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/ncbi"
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/openrouter"
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/services"
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting Bio Re:code gene search server...")

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if err := cfg.ValidateOpenRouter(); err != nil {
		logger.WithError(err).Fatal("OpenRouter configuration validation failed")
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	ncbiClient := ncbi.NewClient(cfg.NCBI.BaseURL, cfg.NCBI.Timeout, logger)
	resolver := services.NewGeneResolver(ncbiClient, logger)

	narrativeClient := openrouter.NewClient(openrouter.Options{
		APIKey:  cfg.OpenRouter.APIKey,
		BaseURL: cfg.OpenRouter.BaseURL,
		Model:   cfg.OpenRouter.Model,
		Timeout: cfg.OpenRouter.Timeout,
		Referer: cfg.OpenRouter.Referer,
		Title:   cfg.OpenRouter.Title,
	}, logger)
	summarizer := services.NewNarrativeSummarizer(narrativeClient, logger)

	checker := health.NewChecker(cfg.NCBI.BaseURL, cfg.OpenRouter.BaseURL, cfg.OpenRouter.APIKey, logger)

	searchHandler := handlers.NewSearchHandler(resolver, summarizer, logger)
	healthHandler := handlers.NewHealthHandler(checker, logger)

	router := api.NewRouter(searchHandler, healthHandler, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.WithField("addr", srv.Addr).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("Forced shutdown")
	}
	logger.Info("Server exited")
}
