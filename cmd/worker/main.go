package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/routeplanner/config"
	"github.com/Domenick1991/routeplanner/internal/kafka"
	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"
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
	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatalf("kafka brokers are not configured")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.SearchEventsTopic)
	defer consumer.Close()

	stats := newSearchStats()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			event, err := kafka.DecodeSearchEvent(msg)
			if err != nil {
				log.Printf("decode event error: %v", err)
				return nil
			}
			stats.record(event)
			return nil
		}); err != nil && ctx.Err() == nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	reportTicker := time.NewTicker(time.Duration(cfg.Worker.ReportIntervalMinutes) * time.Minute)
	defer reportTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-reportTicker.C:
			if r := stats.flush(); r.Searches > 0 {
				log.Print(r)
			}
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			log.Print(stats.flush())
			return
		}
	}
}
