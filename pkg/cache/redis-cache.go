package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/skillwaves/skillwaves-server/config"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	var client *redis.Client
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch cfg.Type {
	case "NORMAL":
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Addrs,
			Password: cfg.Password,
		})
	case "SENTINEL":
		client = redis.NewFailoverClient(&redis.FailoverOptions{
			SentinelAddrs: strings.Split(cfg.Addrs, " "),
			MasterName:    cfg.MasterName,
			Password:      cfg.Password,
			ReadTimeout:   100 * time.Millisecond,
		})
	default:
		zap.S().Errorf("Invalid Redis type: %s. Must be 'NORMAL' or 'SENTINEL'.", cfg.Type)
		return nil
	}
	if _, err := client.Ping(ctx).Result(); err != nil {
		zap.L().Error("Failed to connect to Redis", zap.Error(err))
		return nil
	}

	zap.L().Info("Connected to Redis!!!")
	return client
}

// RedisCache implements Cache over a shared Redis instance. Values must be
// []byte (callers serialize); Get returns []byte.
type RedisCache struct {
	client     *redis.Client
	keyPrefix  string
	defaultTtl time.Duration
}

func NewRedisCache(client *redis.Client, keyPrefix string, defaultTtlSeconds int) *RedisCache {
	return &RedisCache{
		client:     client,
		keyPrefix:  keyPrefix,
		defaultTtl: time.Duration(defaultTtlSeconds) * time.Second,
	}
}

func (c *RedisCache) Get(key string) (any, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	data, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("Redis get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (c *RedisCache) Set(key string, value any) {
	c.SetWithTTL(key, value, int(c.defaultTtl.Seconds()))
}

func (c *RedisCache) SetWithTTL(key string, value any, ttlSeconds int) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := c.client.Set(ctx, c.keyPrefix+key, value, time.Duration(ttlSeconds)*time.Second).Err()
	if err != nil {
		zap.L().Warn("Redis set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *RedisCache) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := c.client.Del(ctx, c.keyPrefix+key).Err(); err != nil {
		zap.L().Warn("Redis delete failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *RedisCache) Size() int {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	count := 0
	iter := c.client.Scan(ctx, 0, c.keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	return count
}

// Clear removes every key under this cache's prefix.
func (c *RedisCache) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	iter := c.client.Scan(ctx, 0, c.keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			zap.L().Warn("Redis clear failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
}

// Stop is a no-op; the Redis client is owned by the process.
func (c *RedisCache) Stop() {}
