package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/akshayraj18/mealfix-analytics/docs"
	"github.com/akshayraj18/mealfix-analytics/internal/assignment"
	"github.com/akshayraj18/mealfix-analytics/internal/config"
	"github.com/akshayraj18/mealfix-analytics/internal/handler"
	"github.com/akshayraj18/mealfix-analytics/internal/logger"
	"github.com/akshayraj18/mealfix-analytics/internal/queue/sqs"
	"github.com/akshayraj18/mealfix-analytics/internal/repository/clickhouse"
	"github.com/akshayraj18/mealfix-analytics/internal/repository/postgres"
	"github.com/akshayraj18/mealfix-analytics/internal/service"
)

// @title MealFix Analytics API
// @version 1.0
// @description Recipe app analytics: event ingestion, feature gating, A/B assignment, and dashboard metrics
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	// Ingest queue
	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		log.Fatal("Failed to create SQS client", zap.Error(err))
	}

	// Event store (read side for the dashboard aggregations)
	clickhouseClient, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
	if err != nil {
		log.Fatal("Failed to create ClickHouse client", zap.Error(err))
	}
	defer func(clickhouseClient *clickhouse.Client) {
		if err := clickhouseClient.Close(); err != nil {
			log.Error("Failed to close ClickHouse client", zap.Error(err))
		}
	}(clickhouseClient)

	eventRepo := clickhouse.NewRepository(clickhouseClient, log)

	// Configuration store: flags, tests, counters
	pgStore, err := postgres.NewStore(ctx, cfg.Postgres.DSN, log)
	if err != nil {
		log.Fatal("Failed to create Postgres store", zap.Error(err))
	}
	defer pgStore.Close()

	if err := pgStore.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize Postgres schema", zap.Error(err))
	}

	flagStore := postgres.NewFlagStore(pgStore)
	testStore := postgres.NewTestStore(pgStore)
	counterStore := postgres.NewCounterStore(pgStore)

	engine := assignment.NewEngine(flagStore, testStore,
		time.Duration(cfg.Assignment.CacheTTLSec)*time.Second, log)

	session := service.NewSession(cfg.App.Platform, cfg.App.Version)
	recorder := service.NewRecorder(sqsClient, counterStore, session, log)
	aggregator := service.NewAggregator(eventRepo, log)

	h := handler.NewHandler(handler.Deps{
		Recorder: recorder,
		Metrics:  aggregator,
		Engine:   engine,
		Flags:    flagStore,
		Tests:    testStore,
		Counters: counterStore,
	}, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
