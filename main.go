package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pokemcp/internal/cache"
	"pokemcp/internal/cache/apiCache"
	"pokemcp/internal/config"
	"pokemcp/internal/fetcher"
	"pokemcp/internal/http"
	"pokemcp/internal/logger"
	"pokemcp/internal/models"
	"pokemcp/internal/pokedex"
	"pokemcp/internal/ratelimit"
)

func main() {
	cfg := config.Load()

	appLogger, err := initializeLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	startupCtx := logger.WithLogEvent(context.Background(), logger.NewInternalLogEvent())

	appLogger.LogInfo(startupCtx, logger.OpServerStart, "Starting PokeMCP API", map[string]interface{}{
		"version": "1.0.0",
		"config": map[string]interface{}{
			"port":          cfg.Port,
			"cache_backend": cacheBackendName(cfg),
			"cache_ttl":     cfg.CacheTTL.Seconds(),
			"base_url":      cfg.PokeAPIBaseURL,
		},
	})

	// One backing store, one fetcher, one cache layer per process; every
	// operation shares them by reference
	store, err := initializeStore(cfg)
	if err != nil {
		appLogger.LogError(startupCtx, "cache_init", "", "Failed to initialize cache backend", err, models.LogSeverityHigh, nil)
		log.Fatalf("Failed to initialize cache backend: %v", err)
	}

	cacheLayer := apiCache.New(store, cfg.CacheTTL)

	pokeFetcher := fetcher.NewHTTPFetcher(
		cfg.PokeAPIBaseURL,
		cfg.FetchTimeout,
		cfg.FetchMaxAttempts,
		cfg.FetchBackoffMin,
		cfg.FetchBackoffMax,
	)

	pokedexService := pokedex.NewService(pokeFetcher, cacheLayer, appLogger, cfg.CacheTTL)

	rateLimiter := ratelimit.NewTwoTierRateLimiter(
		int64(cfg.GlobalRateLimitPerSec),
		int64(cfg.GlobalRateLimitPerSec),
		int64(cfg.PerIPRateLimitPerSec),
		int64(cfg.PerIPRateLimitPerSec),
	)

	handler := http.NewHandler(pokedexService, appLogger)

	addr := ":" + cfg.Port
	server := http.NewServer(
		addr,
		handler,
		appLogger,
		rateLimiter,
		cfg.ServerReadTimeout,
		cfg.ServerWriteTimeout,
	)

	go func() {
		if err := server.Start(); err != nil {
			appLogger.LogError(
				context.Background(),
				logger.OpServerStart,
				"",
				"Server failed to start",
				err,
				models.LogSeverityHigh,
				map[string]interface{}{"addr": addr},
			)
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	fmt.Printf("PokeMCP API server started on %s (cache backend: %s)\n", addr, cacheBackendName(cfg))

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.LogError(ctx, logger.OpServerShutdown, "", "Server shutdown error", err, models.LogSeverityMedium, nil)
		log.Printf("Server shutdown error: %v", err)
	} else {
		appLogger.LogInfo(ctx, logger.OpServerShutdown, "Server shutdown completed successfully", nil)
	}
}

// initializeStore selects the backing store once at startup. A configured
// Redis URL selects the shared external store; otherwise the process-local
// map is used.
func initializeStore(cfg *config.Config) (cache.Service, error) {
	if cfg.RedisURL != "" {
		return cache.NewRedisCache(cfg.RedisURL)
	}
	return cache.NewMemoryCache(), nil
}

// initializeLogger selects the log sink: Postgres when configured, stdout otherwise
func initializeLogger(cfg *config.Config) (logger.Service, error) {
	if cfg.DatabaseURL != "" {
		db, err := logger.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return logger.NewDatabaseLogger(db), nil
	}
	return logger.NewStdoutLogger(), nil
}

func cacheBackendName(cfg *config.Config) string {
	if cfg.RedisURL != "" {
		return "redis"
	}
	return "memory"
}
