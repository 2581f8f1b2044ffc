package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/routeplanner/config"
	"github.com/Domenick1991/routeplanner/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores finished search results. Entries never outlive the dataset
// they were computed from because keys carry the dataset version.
type RedisCache struct {
	client  *redis.Client
	ttl     time.Duration
	version string
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration, version string) *RedisCache {
	return &RedisCache{
		client:  redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:     ttl,
		version: version,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) GetMultiCity(ctx context.Context, from string, destinations []string, criterion domain.Criterion) (*domain.MultiCityResult, error) {
	var result domain.MultiCityResult
	ok, err := c.get(ctx, multiCityKey(c.version, from, destinations, criterion), &result)
	if err != nil || !ok {
		return nil, err
	}
	return &result, nil
}

func (c *RedisCache) SetMultiCity(ctx context.Context, result *domain.MultiCityResult, destinations []string) error {
	return c.set(ctx, multiCityKey(c.version, result.From, destinations, result.Criterion), result)
}

func (c *RedisCache) GetCheapest(ctx context.Context, from string) (*domain.CheapestResult, error) {
	var result domain.CheapestResult
	ok, err := c.get(ctx, cheapestKey(c.version, from), &result)
	if err != nil || !ok {
		return nil, err
	}
	return &result, nil
}

func (c *RedisCache) SetCheapest(ctx context.Context, result *domain.CheapestResult) error {
	return c.set(ctx, cheapestKey(c.version, result.From), result)
}

func (c *RedisCache) get(ctx context.Context, key string, dst interface{}) (bool, error) {
	return decode(c.client.Get(ctx, key), dst)
}

func (c *RedisCache) set(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

// decode reports a miss as (false, nil).
func decode(cmd *redis.StringCmd, dst interface{}) (bool, error) {
	data, err := cmd.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

// Destination order is part of the key: it decides the order of equal-cost routes.
func multiCityKey(version, from string, destinations []string, criterion domain.Criterion) string {
	return fmt.Sprintf("cache:%s:multicity:%s:%s:%s", version, criterion, from, strings.Join(destinations, ","))
}

func cheapestKey(version, from string) string {
	return fmt.Sprintf("cache:%s:cheapest:%s", version, from)
}
