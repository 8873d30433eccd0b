package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecoleplus/drivingschool/config"
	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client   *redis.Client
	slotsTTL time.Duration
	newsTTL  time.Duration
}

func NewRedisCache(cfg config.RedisConfig, slotsTTL, newsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		slotsTTL: slotsTTL,
		newsTTL:  newsTTL,
	}
}

func (c *RedisCache) GetSlots(ctx context.Context, date string) ([]domain.SlotAvailability, error) {
	data, err := c.client.Get(ctx, slotsKey(date)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var slots []domain.SlotAvailability
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *RedisCache) SetSlots(ctx context.Context, date string, slots []domain.SlotAvailability) error {
	payload, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, slotsKey(date), payload, c.slotsTTL).Err()
}

// InvalidateSlots drops the cached slot listing for a date after a
// registration is created or changes status.
func (c *RedisCache) InvalidateSlots(ctx context.Context, date string) error {
	return c.client.Del(ctx, slotsKey(date)).Err()
}

func (c *RedisCache) GetNews(ctx context.Context) ([]domain.News, error) {
	data, err := c.client.Get(ctx, newsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var items []domain.News
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *RedisCache) SetNews(ctx context.Context, items []domain.News) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, newsKey(), payload, c.newsTTL).Err()
}

func (c *RedisCache) InvalidateNews(ctx context.Context) error {
	return c.client.Del(ctx, newsKey()).Err()
}

func slotsKey(date string) string {
	return fmt.Sprintf("cache:slots:%s", date)
}

func newsKey() string {
	return "cache:news"
}
