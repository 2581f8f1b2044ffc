package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/routeplanner/config"
	"github.com/Domenick1991/routeplanner/internal/bootstrap"
	"github.com/Domenick1991/routeplanner/internal/cache"
	"github.com/Domenick1991/routeplanner/internal/engine"
	"github.com/Domenick1991/routeplanner/internal/kafka"
	"github.com/Domenick1991/routeplanner/internal/repository"
	"github.com/Domenick1991/routeplanner/internal/service/search"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var datasetRepo repository.DatasetRepository
	switch cfg.Dataset.Source {
	case config.DatasetSourcePostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		datasetRepo = repository.NewDatasetRepository(pool)
	default:
		datasetRepo = repository.NewCSVDatasetRepository(cfg.Dataset.AirportsFile, cfg.Dataset.FlightsFile)
	}

	g, err := repository.LoadGraph(ctx, datasetRepo)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}
	var opts []engine.OptimizerOption
	if cfg.Search.MaxParallelRoutes > 0 {
		opts = append(opts, engine.WithParallelism(cfg.Search.MaxParallelRoutes))
	}
	optimizer := engine.NewOptimizer(g, opts...)

	var resultCache search.ResultCache
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Search.ResultsCacheTTL)*time.Second, uuid.NewString())
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("redis unavailable, results will not be cached: %v", err)
		} else {
			resultCache = redisCache
		}
	}

	var events search.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		events = producer
	}

	searchService := search.NewSearchService(optimizer, resultCache, events, cfg.Kafka.SearchEventsTopic)

	if err := bootstrap.Run(ctx, cfg, searchService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
