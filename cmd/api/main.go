package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/tutor-classes-api/internal/handler"
	"github.com/noah-isme/tutor-classes-api/internal/repository"
	"github.com/noah-isme/tutor-classes-api/internal/server"
	"github.com/noah-isme/tutor-classes-api/internal/service"
	"github.com/noah-isme/tutor-classes-api/pkg/config"
	"github.com/noah-isme/tutor-classes-api/pkg/database"
	"github.com/noah-isme/tutor-classes-api/pkg/logger"
)

// @title Tutor Classes API
// @version 1.0.0
// @description Tutor availability search and registration
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "error", err, "host", cfg.Database.Host, "db", cfg.Database.Name)
	}
	defer db.Close()

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	classRepo := repository.NewClassRepository(db)
	classSvc := service.NewClassService(classRepo, validator.New(), metricsSvc, logr)

	r := server.NewRouter(server.Dependencies{
		Config:  cfg,
		Logger:  logr,
		Metrics: metricsSvc,
		Classes: handler.NewClassHandler(classSvc),
		Probes:  handler.NewMetricsHandler(metricsSvc, db),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "prefix", cfg.APIPrefix)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
