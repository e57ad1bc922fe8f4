package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lovinamom/internal/config"
	httpapi "lovinamom/internal/http"
	"lovinamom/internal/logger"
	"lovinamom/internal/service"
	"lovinamom/internal/sheet"
	"lovinamom/internal/store"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "lovinamom-data")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.Sheet.APIURL == "" {
		log.Fatal("SHEET_API_URL is not set")
	}

	// Snapshot cache: redis when enabled, in-memory otherwise. A dead
	// redis only costs the cross-restart fallback, not the service.
	var kv store.KV = store.NewMemoryKV()
	var redisClient *redis.Client
	if cfg.CacheEnabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		kv = store.NewRedisKV(redisClient)
		log.Info("redis snapshot cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	client := sheet.NewClient(cfg.Sheet.APIURL, cfg.Sheet.Timeout, cfg.Sheet.RetryDelay, log)

	dashboard := service.NewDashboardService(client, kv, log)
	screeningSvc := service.NewScreeningService(client, dashboard, log)
	system := service.NewSystemService(client, log)
	traffic := service.NewTrafficService(client, log)
	content := service.NewContentService(client, log)

	router := httpapi.NewRouter(log)
	router.RegisterPublicRoutes(
		httpapi.NewScreeningHandler(screeningSvc, dashboard, system, traffic, log),
		httpapi.NewAuthHandler(cfg.AdminPIN, log),
	)
	router.RegisterDashboardRoutes(
		httpapi.NewDashboardHandler(dashboard, log),
		httpapi.NewAdminHandler(system, content, dashboard, log),
	)

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	poller := service.NewPoller(dashboard, cfg.Poll.Interval, log)
	poller.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		cancel()
	case <-errCh:
		cancel()
	}

	poller.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if redisClient != nil {
		_ = redisClient.Close()
	}
}
