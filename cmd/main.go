package main

import (
	"context"
	"net/http"

	appauction "github.com/muhammadheryan/scrapmarket/application/auction"
	apporder "github.com/muhammadheryan/scrapmarket/application/order"
	appuser "github.com/muhammadheryan/scrapmarket/application/user"
	"github.com/muhammadheryan/scrapmarket/cmd/config"
	redisclient "github.com/muhammadheryan/scrapmarket/cmd/redis"
	_ "github.com/muhammadheryan/scrapmarket/docs"
	mockorderRepo "github.com/muhammadheryan/scrapmarket/repository/mockorder"
	sessionRepo "github.com/muhammadheryan/scrapmarket/repository/session"
	"github.com/muhammadheryan/scrapmarket/thirdparty/backendapi"
	"github.com/muhammadheryan/scrapmarket/thirdparty/rabbitmq"
	"github.com/muhammadheryan/scrapmarket/transport"
	"github.com/muhammadheryan/scrapmarket/utils/logger"
	"go.uber.org/zap"
)

// @title SCRAPMARKET GATEWAY API
// @version 1.0
// @description Buyer-facing gateway for the industrial waste marketplace
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting gateway", zap.String("env", cfg.Environment),
		zap.Bool("auction_api", cfg.Auction.UseRealAuctionAPI))

	// Initialize Redis for session storage. Without it the session repository
	// falls back to an in-process store, so sessions will not survive a
	// restart but authenticated flows keep working.
	if err := redisclient.New(cfg); err != nil {
		logger.Warn("redis unavailable, sessions held in memory only", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Marketplace backend client
	backend := backendapi.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	// Local fallback storage for demo orders
	MockRepo, err := mockorderRepo.NewRepository(cfg.MockStore.Path)
	if err != nil {
		logger.Fatal("err open mock order store", zap.Error(err))
	}

	SessionRepo := sessionRepo.NewRepository()

	// Order notification pipeline, optional
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Warn("rabbitmq unavailable, order notifications disabled", zap.Error(err))
			publisher = nil
		} else {
			defer publisher.Close()
		}

		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Backend.BaseURL, cfg.Internal.APIKey)
		if err != nil {
			logger.Warn("rabbitmq consumer unavailable", zap.Error(err))
		} else {
			defer consumer.Close()
			if err := consumer.Start(context.Background()); err != nil {
				logger.Warn("rabbitmq consumer failed to start", zap.Error(err))
			}
		}
	}

	// Initialize application layers
	Resolver := appauction.NewResolver(cfg, backend)
	OrderApp := apporder.NewOrderApp(backend, MockRepo, Resolver, publisher)
	UserApp := appuser.NewUserApp(cfg, backend, SessionRepo)

	httpTransport := transport.NewTransport(UserApp, OrderApp, Resolver, backend, MockRepo, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
