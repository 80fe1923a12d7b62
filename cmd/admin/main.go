package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/oiladmin/pkg/auth"
	"github.com/example/oiladmin/pkg/config"
	"github.com/example/oiladmin/pkg/logging"
	"github.com/example/oiladmin/pkg/repository"
	"github.com/example/oiladmin/pkg/storage"
	"github.com/example/oiladmin/server"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := logging.New(&cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting admin API",
		zap.Int("port", cfg.Server.Port),
		zap.String("host", cfg.Server.Host))

	ctx := context.Background()

	// MongoDB
	mongoRepo, err := repository.NewMongoRepository(&cfg.MongoDB)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := mongoRepo.Ping(pingCtx); err != nil {
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}
	cancel()

	// Redis cache for the settings document; the dashboard works without it.
	redisRepo := repository.NewRedisRepository(&cfg.Redis)
	if err := redisRepo.Ping(ctx); err != nil {
		logger.Warn("Failed to connect to Redis, continuing without cache", zap.Error(err))
		redisRepo = nil
	}

	// Object storage
	s3Client, err := storage.NewS3Client(ctx, &cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to create storage client", zap.Error(err))
	}

	stores := server.Stores{
		Orders:   repository.NewOrderStore(mongoRepo),
		Products: repository.NewProductStore(mongoRepo),
		Contacts: repository.NewContactStore(mongoRepo),
		Site:     repository.NewSiteStore(mongoRepo, redisRepo),
		Storage:  storage.NewClient(s3Client, &cfg.Storage),
	}

	srv := server.New(cfg, logger, auth.New(&cfg.Auth), stores)
	srv.SetupRoutes()

	// Start server in goroutine
	srvErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			srvErr <- err
		}
	}()

	logger.Info("Admin API started successfully")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-srvErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	closeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoRepo.Close(closeCtx); err != nil {
		logger.Warn("Failed to close MongoDB connection", zap.Error(err))
	}
	if redisRepo != nil {
		redisRepo.Close()
	}

	logger.Info("Admin API stopped")
}
