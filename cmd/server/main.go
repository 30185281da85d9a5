package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wallyverse/social-exchange/internal/api"
	"github.com/wallyverse/social-exchange/internal/core/service"
	"github.com/wallyverse/social-exchange/internal/infrastructure/config"
	mongostore "github.com/wallyverse/social-exchange/internal/infrastructure/db/mongo"
	redisstore "github.com/wallyverse/social-exchange/internal/infrastructure/db/redis"
	"github.com/wallyverse/social-exchange/internal/infrastructure/scheduler"
	"github.com/wallyverse/social-exchange/pkg/logger"
)

func main() {
	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	// --- MongoDB ---
	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Redis ---
	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories ---
	users := mongostore.NewUserRepository(db)
	shares := mongostore.NewShareRepository(db)
	follows := mongostore.NewFollowRepository(db)
	trades := mongostore.NewTransactionRepository(db)
	policies := mongostore.NewPolicyRepository(db)
	tx := mongostore.NewTxManager(client)

	// --- Services ---
	followSvc := service.NewFollowService(users, shares, follows, policies, tx, log)
	accountSvc := service.NewAccountService(users, shares, follows, followSvc, tx, log)
	marketSvc := service.NewMarketService(users, shares, trades, tx, log)
	guard := redisstore.NewIssuanceGuard(rdb, cfg.Issuance.ClaimTTL)
	currencySvc := service.NewCurrencyService(users, followSvc, tx, guard, log)
	policySvc := service.NewPolicyService(policies, tx, log)

	// --- Income scheduler ---
	if cfg.Issuance.Enabled {
		sched := scheduler.New(currencySvc, log)
		if err := sched.Start(cfg.Issuance.Schedule); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.Issuance.Schedule).Msg("scheduler start failed")
		}
		defer sched.Stop()
	}

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Accounts: accountSvc,
		Follows:  followSvc,
		Market:   marketSvc,
		Currency: currencySvc,
		Policies: policySvc,
		Mongo:    db,
		Redis:    rdb,
		Log:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
