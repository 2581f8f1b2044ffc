package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	EventMultiCitySearch = "multicity_search"
	EventCheapestSearch  = "cheapest_search"
)

// SearchEvent is published after every completed search.
type SearchEvent struct {
	Type         string    `json:"type"`
	SearchID     string    `json:"search_id"`
	From         string    `json:"from"`
	Destinations []string  `json:"destinations,omitempty"`
	Criterion    string    `json:"criterion,omitempty"`
	RouteCount   int       `json:"route_count"`
	CacheHit     bool      `json:"cache_hit"`
	DurationMs   int64     `json:"duration_ms"`
	At           time.Time `json:"at"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	log.Printf("published to kafka topic=%s key=%s", topic, key)
	return nil
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
