package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cosec/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// Get decodes the cached value into dest. found is false on a miss.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Fee tier table caching
func (s *CacheService) GetFeeTiers(ctx context.Context) ([]models.FeeTier, bool, error) {
	var tiers []models.FeeTier
	found, err := s.Get(ctx, FeeTierTableKey, &tiers)
	if err != nil || !found {
		return nil, false, err
	}
	return tiers, true, nil
}

func (s *CacheService) SetFeeTiers(ctx context.Context, tiers []models.FeeTier) error {
	if tiers == nil {
		tiers = []models.FeeTier{}
	}
	return s.Set(ctx, FeeTierTableKey, tiers)
}

func (s *CacheService) InvalidateFeeTiers(ctx context.Context) error {
	return s.Delete(ctx, FeeTierTableKey)
}

func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *CacheService) GetStats() *redis.PoolStats {
	return s.client.PoolStats()
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
