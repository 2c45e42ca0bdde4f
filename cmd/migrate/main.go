package main

import (
	"context"
	"log"
	"time"

	"go-pipeline-tracker/config"
	"go-pipeline-tracker/pkg/database"
	"go-pipeline-tracker/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := database.RunMigrations(ctx, cfg.DBUrl); err != nil {
		logger.Log.Error("Migration failed", "error", err)
		log.Fatalf("Migration failed: %v", err)
	}

	logger.Log.Info("Migrations applied")
}
