package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/classtrack/academic-records-api/internal/api"
	"github.com/classtrack/academic-records-api/internal/audit"
	"github.com/classtrack/academic-records-api/internal/infrastructure/config"
	mongodb "github.com/classtrack/academic-records-api/internal/infrastructure/db/mongo"
	redisdb "github.com/classtrack/academic-records-api/internal/infrastructure/db/redis"
	"github.com/classtrack/academic-records-api/internal/infrastructure/storage"
	"github.com/classtrack/academic-records-api/pkg/logger"
)

const version = "1.0.0"

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "academic-records-api",
		Pretty:  cfg.Env == "development",
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	files, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload directory unavailable")
	}

	auditLog, err := audit.NewFileLogger(audit.AppInfo{
		Version:     version,
		Environment: cfg.Env,
		ProcessID:   os.Getpid(),
	}, cfg.LogDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("audit logger setup failed")
	}

	e := api.NewRouter(api.Deps{
		Config:   cfg,
		Mongo:    db,
		Redis:    rdb,
		Files:    files,
		AuditLog: auditLog,
		Log:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	stop, stopCancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopCancel()
	<-stop.Done()

	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := auditLog.Close(); err != nil {
		log.Error().Err(err).Msg("audit logger close failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect failed")
	}
}
