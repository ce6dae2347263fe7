package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/wcmap/toilet-map/internal/models"
	"github.com/wcmap/toilet-map/internal/service"
)

// cacheTTL - срок жизни записи в кэше
const cacheTTL = 5 * time.Minute

// RedisToiletCache - кэш записей в Redis
type RedisToiletCache struct {
	redisClient *redis.Client
}

func NewRedisToiletCache(redisClient *redis.Client) service.ToiletCache {
	return &RedisToiletCache{
		redisClient: redisClient,
	}
}

func cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("toilet:%s", id.String())
}

// Get пытается получить запись из Redis. Промах кэша - (nil, nil).
func (c *RedisToiletCache) Get(ctx context.Context, id uuid.UUID) (*models.Toilet, error) {
	val, err := c.redisClient.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get toilet from cache: %w", err)
	}

	toilet := &models.Toilet{}
	if err := json.Unmarshal(val, toilet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal toilet from cache: %w", err)
	}
	return toilet, nil
}

// Set сохраняет запись в Redis
func (c *RedisToiletCache) Set(ctx context.Context, toilet *models.Toilet) error {
	val, err := json.Marshal(toilet)
	if err != nil {
		return fmt.Errorf("failed to marshal toilet for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, cacheKey(toilet.ID), val, cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set toilet in cache: %w", err)
	}
	return nil
}

// Invalidate удаляет запись из кэша
func (c *RedisToiletCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.redisClient.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate toilet cache: %w", err)
	}
	return nil
}
