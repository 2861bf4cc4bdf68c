package main

import (
	"fmt"
	"net/http"
	"os"

	"power-bidding/internal/api/handlers"
	"power-bidding/internal/api/middleware"
	"power-bidding/internal/bidding"
	"power-bidding/internal/config"
	"power-bidding/internal/forecast"
	"power-bidding/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration (file optional; env overrides the port).
	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config %s: %v\n", path, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Port = port
	}

	log := logger.New(logger.Config{
		Level:  cfg.Server.LogLevel,
		Pretty: cfg.Server.Pretty,
	})

	table := cfg.ProfileTable()
	engine := forecast.New(table, cfg.Forecast)
	optimizer := bidding.New(table, cfg.Bidding.EnforceMinCapacity)

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	forecastHandler := handlers.NewForecastHandler(engine, log)
	bidHandler := handlers.NewBidHandler(optimizer, table, cfg.Bidding, log)
	pipelineHandler := handlers.NewPipelineHandler(forecastHandler, bidHandler)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/forecast", forecastHandler.Forecast)
		api.POST("/bids/optimize", bidHandler.Optimize)
		api.POST("/pipeline", pipelineHandler.Run)

		api.GET("/models", forecastHandler.ListModels)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
