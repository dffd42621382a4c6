package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

func main() {
	cfg := loadConfig()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "barangay-portal").Logger()

	// The durable backend activates only when fully configured. A failed
	// ping is not fatal: every storage path degrades to the in-memory
	// fallback, so the portal stays up through a backend outage.
	var kv KV
	if cfg.KVConfigured() {
		client := redis.NewClient(&redis.Options{Addr: cfg.KVAddr, Password: cfg.KVToken})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.KVAddr).Msg("durable backend unreachable, continuing degraded")
		}
		kv = NewRedisKV(client)
	} else {
		logger.Info().Msg("durable backend not configured, running memory-only")
	}

	store := NewStore(kv, logger.With().Str("component", "store").Logger())
	updates := NewBroadcaster(kv, logger.With().Str("component", "updates").Logger())
	activity := NewActivityLog()
	handler := NewHandler(store, updates, activity, logger.With().Str("component", "http").Logger())

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler.Routes(cfg.AdminToken),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("server is listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("could not listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server is shutting down")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped")
}
