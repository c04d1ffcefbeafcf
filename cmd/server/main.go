package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/shadyltdcry-byte/classiklust/internal/api"
	"github.com/shadyltdcry-byte/classiklust/internal/config"
	"github.com/shadyltdcry-byte/classiklust/internal/factory"
	redisstorage "github.com/shadyltdcry-byte/classiklust/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load static game tables; built-in defaults when no file is given
	gameCfg := config.Default()
	if path := os.Getenv("GAME_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			logger.Error("failed to load game config", slog.String("error", err.Error()))
			os.Exit(1)
		}
		gameCfg = loaded
	}

	// Build factory config from environment
	cfg := factory.Config{
		GameConfig:  gameCfg,
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory; wheel validation failures abort startup
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer app.Engine.Close()

	// Create API router
	router, stopLimiter := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		Engine:       app.Engine,
		Clock:        app.Clock,
		SpinInterval: spinIntervalFromEnv(logger),
		SpinBurst:    1,
	})
	defer stopLimiter()

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("invalid PORT", slog.String("port", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// spinIntervalFromEnv reads the wheel cooldown, defaulting to one spin per
// minute. SPIN_COOLDOWN accepts Go duration syntax; "0" disables it.
func spinIntervalFromEnv(logger *slog.Logger) time.Duration {
	raw := os.Getenv("SPIN_COOLDOWN")
	if raw == "" {
		return time.Minute
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		logger.Warn("invalid SPIN_COOLDOWN, using default", slog.String("value", raw))
		return time.Minute
	}
	return d
}
