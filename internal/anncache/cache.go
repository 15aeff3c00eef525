// Package anncache keeps the process-wide cache of events seen on the global
// announcement channel. Announcements are usable before (or instead of) full
// materialization, so they are held separately from the store reads and
// merged by the sync layer.
package anncache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/TalkWave/internal/domain"
)

type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func New(redisURL string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewWithClient(client, ttl), nil
}

// NewWithClient wraps an existing Redis client.
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		prefix: "announce:",
		ttl:    ttl,
	}
}

func (c *Cache) key(id string) string {
	return c.prefix + id
}

// Put stores one announcement, whole-value replace keyed by event id.
func (c *Cache) Put(ctx context.Context, a domain.Announcement) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal announcement: %w", err)
	}

	if err := c.client.Set(ctx, c.key(a.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("store announcement: %w", err)
	}
	return nil
}

// All returns every cached announcement. Corrupt entries are skipped.
func (c *Cache) All(ctx context.Context) ([]domain.Announcement, error) {
	var out []domain.Announcement

	iter := c.client.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := c.client.Get(ctx, iter.Val()).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("read announcement %s: %w", iter.Val(), err)
		}

		var a domain.Announcement
		if err := json.Unmarshal([]byte(data), &a); err != nil {
			continue
		}
		out = append(out, a)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan announcements: %w", err)
	}

	return out, nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
