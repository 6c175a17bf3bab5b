package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kent15/youtube-analytics-platform/internal/cache"
	"github.com/kent15/youtube-analytics-platform/internal/config"
	"github.com/kent15/youtube-analytics-platform/internal/db"
	"github.com/kent15/youtube-analytics-platform/internal/db/repository"
	"github.com/kent15/youtube-analytics-platform/internal/handler"
	"github.com/kent15/youtube-analytics-platform/internal/service"
	"github.com/kent15/youtube-analytics-platform/internal/service/quota"
	"github.com/kent15/youtube-analytics-platform/internal/service/youtube"
	"github.com/kent15/youtube-analytics-platform/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Log.Fatal("server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer db.Close(pool)

	logger.Log.Info("database connection established",
		zap.String("host", cfg.Database.Host),
		zap.String("name", cfg.Database.Name),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	resultCache := cache.New(redisClient)
	if err := resultCache.Ping(ctx); err != nil {
		// The cache is an accelerator; a missing Redis degrades latency only.
		logger.Log.Warn("redis unreachable at startup", zap.Error(err))
	}

	channelRepo := repository.NewChannelRepository(pool)
	videoRepo := repository.NewVideoRepository(pool)
	snapshotRepo := repository.NewSnapshotRepository(pool)
	trackedRepo := repository.NewTrackedChannelRepository(pool)

	budget := quota.NewBudget(cfg.Quota.DailyLimit, cfg.Quota.AlertThreshold)
	pacer := youtube.NewPacer(cfg.YouTube.MaxRequestsPerSecond)

	ytClient, err := youtube.NewClient(ctx, cfg.YouTube.APIKey, budget, pacer)
	if err != nil {
		return fmt.Errorf("initialize YouTube client: %w", err)
	}

	analysisService := service.NewAnalysisService(ytClient, resultCache, channelRepo, videoRepo, snapshotRepo, cfg.Analysis)
	rankingService := service.NewRankingService(videoRepo)
	scheduler := service.NewSnapshotScheduler(analysisService, trackedRepo, cfg.Batch)

	go scheduler.Run(ctx)

	router := handler.NewRouter(
		handler.NewAnalysisHandler(analysisService),
		handler.NewRankingHandler(rankingService),
		handler.NewQuotaHandler(budget),
		handler.NewTrackedChannelHandler(trackedRepo),
		handler.NewHealthHandler(pool, resultCache),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Log.Info("server starting", zap.Int("port", cfg.Server.Port))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", zap.Error(err))
		if err := server.Close(); err != nil {
			return fmt.Errorf("close server: %w", err)
		}
	}

	logger.Log.Info("server stopped gracefully")
	return nil
}
