package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-pipeline-tracker/config"
	_ "go-pipeline-tracker/docs" // Important for Swagger
	v1 "go-pipeline-tracker/internal/delivery/http/v1"
	"go-pipeline-tracker/internal/repository/postgres"
	"go-pipeline-tracker/internal/usecase"
	"go-pipeline-tracker/pkg/auth"
	"go-pipeline-tracker/pkg/database"
	"go-pipeline-tracker/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// @title           Pipeline Tracker API
// @version         1.0
// @description     Recruitment pipeline tracker with unified status reconciliation across direct applications and recruiter submissions.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting pipeline tracker", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	positionRepo := postgres.NewPositionRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	submissionRepo := postgres.NewSubmissionRepository(dbPool)
	messageRepo := postgres.NewMessageRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)

	// 5. Setup UseCases
	validate := validator.New()
	pipelineUC := usecase.NewPipelineUsecase(applicationRepo, candidateRepo, submissionRepo, usecase.Limits{
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
		ExportRowLimit:  cfg.ExportRowLimit,
	})
	positionUC := usecase.NewPositionUsecase(positionRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo)
	submissionUC := usecase.NewSubmissionUsecase(submissionRepo, candidateRepo, positionRepo, validate)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, positionRepo, userRepo, messageRepo, cfg.SystemSenderLabel)
	inboxUC := usecase.NewInboxUsecase(messageRepo, userRepo)

	// 6. Setup Token Verifier
	verifier := auth.NewVerifier(cfg.JWTSecret)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		PipelineUC:    pipelineUC,
		PositionUC:    positionUC,
		ApplicationUC: applicationUC,
		SubmissionUC:  submissionUC,
		InterviewUC:   interviewUC,
		InboxUC:       inboxUC,
		Verifier:      verifier,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
