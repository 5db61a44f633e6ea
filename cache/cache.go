package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dentabookhq/core/config"
	"github.com/dentabookhq/core/logger"

	"github.com/go-redis/redis/v8"
)

type Cache struct {
	Rdb *redis.Client
	Ctx context.Context
	log *logger.Logger
}

// NewCache returns an initiated Redis client
func NewCache(log *logger.Logger) *Cache {
	var err error
	var opt *redis.Options

	if uri := config.Current.RedisURL; len(uri) > 0 {
		opt, err = redis.ParseURL(uri)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL value")
		}
	} else {
		opt = &redis.Options{
			Addr:     config.Current.RedisHost,
			Password: config.Current.RedisPassword,
			DB:       0, // use default DB
		}
	}
	rdb := redis.NewClient(opt)

	return &Cache{
		Rdb: rdb,
		Ctx: context.Background(),
		log: log,
	}
}

func (c *Cache) Get(key string) (string, error) {
	return c.Rdb.Get(c.Ctx, key).Result()
}

func (c *Cache) Set(key string, value string) error {
	if _, err := c.Rdb.Set(c.Ctx, key, value, 12*time.Hour).Result(); err != nil {
		return err
	}
	return nil
}

func (c *Cache) GetTyped(key string, v any) error {
	s, err := c.Get(key)
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(s), v)
}

func (c *Cache) SetTyped(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(key, string(b))
}

func (c *Cache) Inc(key string, by int64) (int64, error) {
	return c.Rdb.IncrBy(c.Ctx, key, by).Result()
}

func (c *Cache) Dec(key string, by int64) (int64, error) {
	return c.Rdb.DecrBy(c.Ctx, key, by).Result()
}
