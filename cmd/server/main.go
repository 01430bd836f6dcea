// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ekthaa-chatbot/internal/catalog"
	"ekthaa-chatbot/internal/chat"
	"ekthaa-chatbot/internal/common/config"
	"ekthaa-chatbot/internal/common/database"
	"ekthaa-chatbot/internal/common/logger"
	"ekthaa-chatbot/internal/nlu"
	"ekthaa-chatbot/internal/server"
	"ekthaa-chatbot/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	log.WithFields(map[string]interface{}{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting chatbot server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	postgres, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		log.WithError(err).Error("Failed to connect to PostgreSQL")
		os.Exit(1)
	}
	defer postgres.Close()
	if err := postgres.Ping(ctx); err != nil {
		log.WithError(err).Error("PostgreSQL ping failed")
		os.Exit(1)
	}

	sessions, cleanup, err := buildSessionStore(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Error("Failed to initialize session store")
		os.Exit(1)
	}
	defer cleanup()

	var completer chat.Completer
	var extractorCompleter nlu.Completer
	groq, err := nlu.NewClient(cfg.Groq, log)
	if err != nil {
		log.WithError(err).Warn("Groq unavailable, running with heuristics only")
	} else {
		completer = groq
		extractorCompleter = groq
	}

	store := catalog.NewStore(postgres.GetDB(), log)
	extractor := nlu.NewExtractor(extractorCompleter, log)
	service := chat.NewService(store, sessions, extractor, completer, log)

	router := server.New(server.NewHandler(service, log), log)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.WithFields(map[string]interface{}{"port": cfg.Server.Port}).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("HTTP server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}

func buildSessionStore(ctx context.Context, cfg *config.Config, log logger.Logger) (session.Store, func(), error) {
	ttl := config.GetDuration(cfg.Session.TTL * 1000)

	if cfg.Session.Backend != "redis" {
		log.Info("Using in-memory session store")
		return session.NewMemoryStore(ttl), func() {}, nil
	}

	redisClient, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		return nil, nil, err
	}
	if err := redisClient.Ping(ctx); err != nil {
		redisClient.Close()
		return nil, nil, err
	}
	log.Info("Using Redis session store")
	return session.NewRedisStore(redisClient.GetClient(), ttl),
		func() { redisClient.Close() }, nil
}
