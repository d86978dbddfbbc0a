package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"clipstream/infrastructure/cache"
	muxclient "clipstream/infrastructure/clients/mux"
	"clipstream/infrastructure/configuration"
	"clipstream/infrastructure/logger"
	"clipstream/infrastructure/moderation"
	"clipstream/infrastructure/persistence"
	"clipstream/infrastructure/pubsub"
	httpHandler "clipstream/interfaces/http"
	"clipstream/server"
	"clipstream/usecase"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	configuration.LoadEnvFromFile("config.env", ".env")
	cfg := configuration.C

	mongoClient, err := persistence.NewMongoDb(
		cfg.Database.Mongo.Host,
		cfg.Database.Mongo.Port,
		cfg.Database.Mongo.User,
		cfg.Database.Mongo.Password,
		cfg.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("MongoDB connection failed")
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.GetLogger().WithField("error", err).Fatal("MongoDB ping failed")
	}
	logger.GetLogger().Info("MongoDB connected successfully")
	db := mongoClient.Database(cfg.Database.Mongo.Name)

	if err := persistence.EnsureIndexes(ctx, db); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Index creation failed - continuing")
	}

	var viewsCache cache.IViewsCache
	redisClient := cache.NewRedisClient(cfg.RedisClient.Host, cfg.RedisClient.Port, cfg.RedisClient.Password)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing without views cache")
	} else {
		viewsCache = cache.NewViewsCache(redisClient, 10*time.Minute)
	}

	var publisher pubsub.IPublisher
	if cfg.Pubsub.ProjectID != "" {
		pubSubClient, err := pubsub.NewPubSub(ctx, cfg.Pubsub.ProjectID)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("PubSub not available - continuing without events")
		} else {
			publisher = pubsub.NewPublisher(pubSubClient)
		}
	}

	provider := muxclient.NewMuxClient(&muxclient.Config{
		TokenID:     cfg.Mux.TokenID,
		TokenSecret: cfg.Mux.TokenSecret,
		BaseURL:     cfg.Mux.BaseURL,
		Timeout:     time.Duration(cfg.Mux.TimeoutSeconds) * time.Second,
	})

	filter := moderation.NewFilterFromFile(cfg.Moderation.BlacklistFile)

	videoRepo := persistence.NewVideoRepository(db)
	engagementRepo := persistence.NewEngagementRepository(db)
	profileRepo := persistence.NewProfileRepository(db)
	commentRepo := persistence.NewCommentRepository(db)

	ingestionUsecase := usecase.NewIngestionUsecase(videoRepo, provider).
		WithEvents(publisher, cfg.Pubsub.Topic)
	videoUsecase := usecase.NewVideoUsecase(videoRepo, profileRepo, provider, viewsCache)
	engagementUsecase := usecase.NewEngagementUsecase(videoRepo, engagementRepo, profileRepo, provider, viewsCache)
	commentUsecase := usecase.NewCommentUsecase(commentRepo, profileRepo, filter)
	profileUsecase := usecase.NewProfileUsecase(profileRepo, filter)

	router := server.InitiateRouter(
		httpHandler.NewVideoHandler(videoUsecase, ingestionUsecase),
		httpHandler.NewWebhookHandler(ingestionUsecase),
		httpHandler.NewEngagementHandler(engagementUsecase),
		httpHandler.NewCommentHandler(commentUsecase),
		httpHandler.NewProfileHandler(profileUsecase),
		cfg.App.SecretKey,
	)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	g.Go(func() error {
		logger.GetLogger().WithField("port", cfg.App.Port).Info("Server starting")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		select {
		case sig := <-interrupt:
			logger.GetLogger().WithField("signal", sig.String()).Info("Shutdown signal received")
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Server shutdown failed")
		}
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			logger.GetLogger().WithField("error", err).Error("MongoDB disconnect failed")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server stopped with error")
	}
}
