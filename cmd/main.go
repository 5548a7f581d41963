package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"batepapo/backend/internal/api/handler"
	"batepapo/backend/internal/chat"
	"batepapo/backend/internal/config"
	"batepapo/backend/internal/presence"
	"batepapo/backend/internal/storage"
	"batepapo/backend/internal/sweeper"
)

func setupStorage(ctx context.Context, cfg config.Config) (*mongo.Client, *storage.Service, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	store := storage.NewService(client.Database(cfg.DatabaseName))
	if err := store.EnsureIndexes(connectCtx); err != nil {
		return nil, nil, err
	}
	return client, store, nil
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Store handle, owned here and torn down on exit.
	client, store, err := setupStorage(ctx, cfg)
	if err != nil {
		log.Error("storage setup failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("mongo disconnect failed", "error", err)
		}
	}()

	// 2. Services. The registry and the chat store reference each other
	// through narrow interfaces, closed after construction.
	registry := presence.NewRegistry(store, log)
	chatStore := chat.NewStore(store, registry, log)
	registry.SetNotifier(chatStore)

	// 3. Background sweeper, sharing the collections with the request path.
	sw := sweeper.New(registry, chatStore,
		config.SweepInterval, config.InactivityThreshold, config.LeaveNotice, log)
	go sw.Run(ctx)

	// 4. Router.
	r := gin.Default()
	h := handler.NewHandler(registry, chatStore, log)

	r.POST("/participants", h.CreateParticipant)
	r.GET("/participants", h.ListParticipants)
	r.POST("/messages", h.PostMessage)
	r.GET("/messages", h.ListMessages)
	r.POST("/status", h.Heartbeat)
	r.PUT("/messages/:id", h.UpdateMessage)
	r.DELETE("/messages/:id", h.DeleteMessage)

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Port),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}
}
