package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jobscout-app/jobscout-api/internal/config"
	"github.com/jobscout-app/jobscout-api/internal/database"
	"github.com/jobscout-app/jobscout-api/internal/handlers"
	"github.com/jobscout-app/jobscout-api/internal/llm"
	"github.com/jobscout-app/jobscout-api/internal/logger"
	"github.com/jobscout-app/jobscout-api/internal/repository"
	"github.com/jobscout-app/jobscout-api/internal/services"
)

func main() {
	// 1. Environment & configuration. A missing GEMINI_API_KEY fails here,
	// not on the first extraction request.
	_ = godotenv.Load()
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// 2. Database connection + migrations
	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	log.Info().Msg("database connection established")

	// 3. Core services
	ctx := context.Background()
	llmClient, err := llm.New(ctx, cfg.LLM, log)
	if err != nil {
		log.Fatal().Err(err).Msg("LLM client initialization failed")
	}
	jobRepo := repository.NewJobRepository(db)
	intakeService := services.NewIntakeService(llmClient, jobRepo, log)

	// 4. Handlers
	extractHandler := handlers.NewExtractHandler(intakeService, log)
	jobHandler := handlers.NewJobHandler(jobRepo, log)

	// 5. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-User-ID"}
	r.Use(cors.New(corsConfig))

	// 6. Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/extract/analyze", extractHandler.Analyze)
		api.POST("/extract/private", extractHandler.ExtractPrivate)
		api.POST("/extract/government", extractHandler.ExtractGovernment)
		api.POST("/extract/url", extractHandler.ExtractFromURL)

		api.GET("/jobs/private", jobHandler.ListPrivateJobs)
		api.POST("/jobs/private", jobHandler.CreatePrivateJob)
		api.GET("/jobs/private/:id", jobHandler.GetPrivateJob)
		api.PUT("/jobs/private/:id", jobHandler.UpdatePrivateJob)
		api.DELETE("/jobs/private/:id", jobHandler.DeletePrivateJob)

		api.GET("/jobs/government", jobHandler.ListGovernmentJobs)
		api.POST("/jobs/government", jobHandler.CreateGovernmentJob)
		api.GET("/jobs/government/:id", jobHandler.GetGovernmentJob)
		api.PUT("/jobs/government/:id", jobHandler.UpdateGovernmentJob)
		api.DELETE("/jobs/government/:id", jobHandler.DeleteGovernmentJob)
	}

	log.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}
